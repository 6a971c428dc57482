package provisioning

import (
	"doctrack/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Provisioning endpoints do their own admin check through the guard, so
// they take the raw bearer token instead of sitting behind the usual auth
// middleware. The verify endpoint is public and rate limited: six-digit
// codes do not survive an unthrottled guesser.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	prov := r.Group("/provisioning")
	{
		prov.POST("/users", middleware.RateLimitByIP(2, 5), handler.CreateUser)
		prov.POST("/staff", middleware.RateLimitByIP(2, 5), handler.InviteStaff)
		prov.POST("/staff/verify", middleware.RateLimitByIP(0.5, 3), handler.VerifyStaff)
		prov.DELETE("/users/:id", middleware.RateLimitByIP(2, 5), handler.DeleteUser)
	}
}
