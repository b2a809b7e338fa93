package payslip

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		payslips.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		payslips.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		payslips.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		payslips.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
