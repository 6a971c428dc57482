package identity

import "context"

// Identity is the account record held by the external identity provider.
// Provider user ids double as profile primary keys.
type Identity struct {
	ID             string
	Email          string
	EmailConfirmed bool
}

//go:generate mockgen -source=identity.go -destination=mock/store_mock.go -package=mock

// Store wraps the identity provider operations the provisioning flows need.
// Implementations must normalize provider errors to the sentinels in
// identityerrors so callers can branch without knowing the provider.
type Store interface {
	CreateUser(ctx context.Context, email, password string, emailConfirmed bool) (*Identity, error)
	DeleteUser(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (*Identity, error)
	SetRole(ctx context.Context, id, role string) error
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
