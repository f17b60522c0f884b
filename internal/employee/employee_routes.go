package employee

import (
	"go-erp/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the employee CRUD surface. There is no DELETE
// route: employees are deactivated, never removed.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthRequired())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "employee", "read"),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "employee", "write"),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "employee", "write"),
			handler.Update,
		)
	}
}
