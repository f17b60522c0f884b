package backup

import (
	"go-erp/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	group := r.Group("/backup")
	group.Use(middleware.AuthRequired())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/export",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "backup", "export"),
			handler.Export,
		)

		group.POST("/import",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(enforcer, "backup", "import"),
			handler.Import,
		)

		group.POST("/reset",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(enforcer, "backup", "reset"),
			handler.Reset,
		)
	}
}
