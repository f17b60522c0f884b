package middleware

import (
	"net/http"

	"go-erp/internal/shared/apperror"
	"go-erp/internal/shared/response"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// Authorize enforces the role policy for one resource/action pair. It
// runs after AuthRequired, which stores the role on the context.
func Authorize(enforcer *casbin.Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
