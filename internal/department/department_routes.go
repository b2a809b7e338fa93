package department

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	departments := r.Group("/departments")
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		departments.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		departments.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		departments.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		departments.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
