package salary

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	salaries := r.Group("/salaries")
	salaries.Use(middleware.ContextLogger(logger))
	{
		salaries.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.ListByEmployee,
		)
		salaries.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
	}
}
