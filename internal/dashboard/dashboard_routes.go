package dashboard

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
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthRequired())
	dash.Use(middleware.ContextLogger(logger))
	{
		dash.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "dashboard", "read"),
			handler.Stats,
		)
	}
}
