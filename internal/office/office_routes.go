package office

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, authz rbac.Authorizer) {
	offices := r.Group("/offices", authn)
	{
		offices.GET("", middleware.RBACAuthorize(authz, "offices", "read"), handler.GetAll)
		offices.GET("/:id", middleware.RBACAuthorize(authz, "offices", "read"), handler.GetById)
		offices.POST("", middleware.RBACAuthorize(authz, "offices", "write"), handler.Create)
		offices.PUT("/:id", middleware.RBACAuthorize(authz, "offices", "write"), handler.Update)
		offices.DELETE("/:id", middleware.RBACAuthorize(authz, "offices", "write"), handler.Delete)
	}
}
