package branding

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, authz rbac.Authorizer) {
	brandingGroup := r.Group("/branding", authn)
	{
		brandingGroup.GET("", middleware.RBACAuthorize(authz, "branding", "read"), handler.Get)
		brandingGroup.PUT("", middleware.RBACAuthorize(authz, "branding", "write"), handler.Update)
	}
}
