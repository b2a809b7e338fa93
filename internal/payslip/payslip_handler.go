package payslip

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
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payslip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.HTTPStatus),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.HTTPStatus, httpErr.Message)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create payslip validation failed", zap.Error(err))
		response.ValidationError(c, "Invalid payslip data", apperror.FieldErrors(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id := uuid.MustParse(resp.PayslipID)
	response.OK(c, http.StatusCreated, "Payslip created successfully", &id)
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
	var req ListPayslipsRequest
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
		"Payslips retrieved successfully",
	))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update payslip validation failed", zap.Error(err))
		response.ValidationError(c, "Invalid payslip data", apperror.FieldErrors(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id := uuid.MustParse(resp.PayslipID)
	response.OK(c, http.StatusOK, "Payslip updated successfully", &id)
}

func (h *Handler) Delete(c *gin.Context) {
	idParam := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), idParam); err != nil {
		h.writeServiceError(c, err)
		return
	}

	id, err := uuid.Parse(idParam)
	if err != nil {
		response.OK(c, http.StatusOK, "Payslip deleted successfully", nil)
		return
	}
	response.OK(c, http.StatusOK, "Payslip deleted successfully", &id)
}
