package provisioning

import (
	"context"
	"errors"

	"doctrack/internal/identity"
	"doctrack/internal/profile"
	provisioningerrors "doctrack/internal/provisioning/errors"

	"gorm.io/gorm"
)

// Guard is the single place the admin check lives. Every provisioning
// mutation resolves the caller through it before touching any store.
type Guard struct {
	ids      identity.Store
	profiles profile.Repository
}

func NewGuard(ids identity.Store, profiles profile.Repository) *Guard {
	return &Guard{ids: ids, profiles: profiles}
}

// RequireAdmin resolves the bearer token to an identity, loads the matching
// profile, and requires role admin. Returns the caller id for audit logs.
// Read-only: performs no mutation on either store.
func (g *Guard) RequireAdmin(ctx context.Context, token string) (string, error) {
	ident, err := g.ids.VerifyToken(ctx, token)
	if err != nil {
		return "", err
	}

	p, err := g.profiles.FindByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", provisioningerrors.ErrAdminRequired
		}
		return "", err
	}

	if p.Role != profile.RoleAdmin {
		return "", provisioningerrors.ErrAdminRequired
	}

	return ident.ID, nil
}
