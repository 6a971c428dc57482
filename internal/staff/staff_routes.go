package staff

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, authz rbac.Authorizer) {
	staff := r.Group("/staff", authn)
	{
		staff.GET("", middleware.RBACAuthorize(authz, "staff", "read"), handler.GetAll)
		staff.GET("/:id", middleware.RBACAuthorize(authz, "staff", "read"), handler.GetById)
		staff.DELETE("/:id", middleware.RBACAuthorize(authz, "staff", "write"), handler.Delete)
	}
}
