package payperiod

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	periods := r.Group("/payperiods")
	periods.Use(middleware.ContextLogger(logger))
	{
		periods.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		periods.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		periods.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		periods.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		periods.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
