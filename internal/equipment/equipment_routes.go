package equipment

import (
	"go-erp/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the equipment CRUD surface. Removal is not
// supported; equipment is retired through the Descartado status.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	equipment := r.Group("/equipment")
	equipment.Use(middleware.AuthRequired())
	equipment.Use(middleware.ContextLogger(logger))
	{
		equipment.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "equipment", "read"),
			handler.GetAll,
		)

		equipment.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(enforcer, "equipment", "read"),
			handler.GetById,
		)

		equipment.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "equipment", "write"),
			handler.Create,
		)

		equipment.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(enforcer, "equipment", "write"),
			handler.Update,
		)
	}
}
