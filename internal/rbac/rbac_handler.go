package rbac

import (
	"net/http"

	"doctrack/internal/shared/apperror"
	"doctrack/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authz Authorizer
}

func NewHandler(authz Authorizer) *Handler {
	return &Handler{authz: authz}
}

// GetMyPermissions returns the permissions of the caller's role so the
// frontend can hide actions the backend would reject anyway.
func (h *Handler) GetMyPermissions(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		response.WriteError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.authz.PermissionsFor(role)
	if err != nil {
		response.WriteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"role": role, "permissions": perms}, nil)
}
