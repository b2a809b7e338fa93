package employee

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-hrpay/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		// Registered before ":id" so the literal segments win.
		employees.GET("/search",
			middleware.RateLimitByIP(5, 10),
			handler.Search,
		)
		employees.GET("/options",
			middleware.RateLimitByIP(10, 20),
			handler.GetOptions,
		)
		employees.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
