package department

import (
	"hr-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)
	}
}
