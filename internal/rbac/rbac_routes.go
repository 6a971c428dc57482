package rbac

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn gin.HandlerFunc) {
	r.GET("/me/permissions", authn, handler.GetMyPermissions)
}
