package middleware

import (
	"errors"
	"net/http"
	"strings"

	"doctrack/internal/identity"
	"doctrack/internal/profile"
	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/contextutil"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token against the identity provider
// and loads the matching profile. Downstream handlers read user_id, email
// and role from the gin context; the standard context carries user_id for
// the service layer.
func AuthMiddleware(ids identity.Store, profiles profile.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		ident, err := ids.VerifyToken(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		p, err := profiles.FindByID(c.Request.Context(), ident.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "Account has no profile", nil)
			} else {
				response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Failed to load profile", nil)
			}
			c.Abort()
			return
		}

		c.Set("user_id", ident.ID)
		c.Set("email", p.Email)
		c.Set("role", p.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), ident.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
