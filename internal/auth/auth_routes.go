package auth

import (
	"go-erp/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the session surface and the admin-only user
// management surface.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	enforcer *casbin.Enforcer,
	logger *zap.Logger,
) {
	sessions := r.Group("/auth")
	sessions.Use(middleware.ContextLogger(logger))
	{
		sessions.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)

		sessions.POST("/logout",
			middleware.AuthRequired(),
			handler.Logout,
		)

		sessions.GET("/me",
			middleware.AuthRequired(),
			middleware.RateLimitByUser(3, 10),
			handler.Me,
		)

		sessions.PUT("/password",
			middleware.AuthRequired(),
			middleware.RateLimitByUser(0.5, 2),
			handler.ChangePassword,
		)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthRequired())
	users.Use(middleware.ContextLogger(logger))
	users.Use(middleware.Authorize(enforcer, "user", "manage"))
	{
		users.GET("", handler.ListUsers)
		users.POST("", handler.CreateUser)
		users.PUT("/:username/active", handler.ToggleActive)
		users.PUT("/:username/password", handler.ResetPassword)
	}
}
