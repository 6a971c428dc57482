package profile

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, authz rbac.Authorizer) {
	profiles := r.Group("/profiles", authn)
	{
		profiles.GET("", middleware.RBACAuthorize(authz, "profiles", "read"), handler.GetAll)
		profiles.GET("/:id", middleware.RBACAuthorize(authz, "profiles", "read"), handler.GetById)
		profiles.PUT("/:id", middleware.RBACAuthorize(authz, "profiles", "write"), handler.Update)
	}
}
