package position

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc, authz rbac.Authorizer) {
	positions := r.Group("/positions", authn)
	{
		positions.GET("", middleware.RBACAuthorize(authz, "positions", "read"), handler.GetAll)
		positions.GET("/:id", middleware.RBACAuthorize(authz, "positions", "read"), handler.GetById)
		positions.POST("", middleware.RBACAuthorize(authz, "positions", "write"), handler.Create)
		positions.PUT("/:id", middleware.RBACAuthorize(authz, "positions", "write"), handler.Update)
		positions.DELETE("/:id", middleware.RBACAuthorize(authz, "positions", "write"), handler.Delete)
	}
}
