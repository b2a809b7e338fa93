package position

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	positions := r.Group("/positions")
	positions.Use(middleware.ContextLogger(logger))
	{
		positions.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		positions.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		positions.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		positions.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		positions.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
