package middleware

import (
	"net/http"

	"doctrack/internal/rbac"
	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize checks the caller's role, set by AuthMiddleware, against
// the seeded policy for resource and action.
func RBACAuthorize(authz rbac.Authorizer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := authz.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				map[string]string{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
