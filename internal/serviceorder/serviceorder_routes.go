package serviceorder

import (
	"go-erp/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the service order CRUD surface. Orders are
// never removed; closed work stays in the history as Concluída or
// Cancelada.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	orders := r.Group("/service-orders")
	orders.Use(middleware.AuthRequired())
	orders.Use(middleware.ContextLogger(logger))
	{
		orders.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "serviceorder", "read"),
			handler.GetAll,
		)

		orders.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "serviceorder", "read"),
			handler.GetById,
		)

		orders.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "serviceorder", "write"),
			handler.Create,
		)

		orders.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "serviceorder", "write"),
			handler.Update,
		)
	}
}
