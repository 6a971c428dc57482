package document

import (
	"doctrack/internal/middleware"
	"doctrack/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, authn gin.HandlerFunc, authz rbac.Authorizer) {
	docs := r.Group("/documents", authn)
	{
		docs.POST("",
			middleware.RBACAuthorize(authz, "documents", "write"),
			middleware.RateLimitByUser(5, 10),
			middleware.Idempotency(rdb),
			handler.Submit,
		)
		docs.GET("/mine", middleware.RBACAuthorize(authz, "documents", "read"), handler.GetMine)
		docs.GET("/assigned", middleware.RBACAuthorize(authz, "documents", "review"), handler.GetAssigned)
		docs.GET("/:id", middleware.RBACAuthorize(authz, "documents", "read"), handler.GetByID)
		docs.PATCH("/:id/status", middleware.RBACAuthorize(authz, "documents", "review"), handler.UpdateStatus)
		docs.POST("/:id/files", middleware.RBACAuthorize(authz, "documents", "write"), handler.AddFile)
	}
}
