package payperiod

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-hrpay/internal/shared/apperror"
	"go-hrpay/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payperiod.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payperiod.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("pay period request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.HTTPStatus),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.HTTPStatus, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePayPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create pay period validation failed", zap.Error(err))
		response.ValidationError(c, "Invalid pay period data", apperror.FieldErrors(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id := uuid.MustParse(resp.PayPeriodID)
	response.OK(c, http.StatusCreated, "Pay period created successfully", &id)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) List(c *gin.Context) {
	var req ListPayPeriodsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, "Invalid request parameters", apperror.FieldErrors(err))
		return
	}
	if err := req.Validate(); err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, response.NewPaginated(
		page.Items, page.TotalCount, page.PageNumber, page.PageSize,
		"Pay periods retrieved successfully",
	))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update pay period validation failed", zap.Error(err))
		response.ValidationError(c, "Invalid pay period data", apperror.FieldErrors(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id := uuid.MustParse(resp.PayPeriodID)
	response.OK(c, http.StatusOK, "Pay period updated successfully", &id)
}

func (h *Handler) Delete(c *gin.Context) {
	idParam := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), idParam); err != nil {
		h.writeServiceError(c, err)
		return
	}

	id, err := uuid.Parse(idParam)
	if err != nil {
		response.OK(c, http.StatusOK, "Pay period deleted successfully", nil)
		return
	}
	response.OK(c, http.StatusOK, "Pay period deleted successfully", &id)
}
