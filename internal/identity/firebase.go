package identity

import (
	"context"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	identityerrors "doctrack/internal/identity/errors"
)

type firebaseStore struct {
	client *auth.Client
	logger *zap.Logger
}

// NewFirebaseStore initializes the Firebase Admin SDK from a service
// account key file and returns a Store backed by its Auth client.
func NewFirebaseStore(credentialsPath, projectID string, logger *zap.Logger) (Store, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("identity provider credentials path is required")
	}

	opt := option.WithCredentialsFile(filepath.Clean(credentialsPath))

	var app *firebase.App
	var err error

	if projectID != "" {
		app, err = firebase.NewApp(context.Background(), &firebase.Config{ProjectID: projectID}, opt)
	} else {
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}
	if err != nil {
		return nil, fmt.Errorf("init identity provider app: %w", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init identity provider auth client: %w", err)
	}

	logger.Info("identity provider initialized")
	return &firebaseStore{client: client, logger: logger.Named("identity.firebase")}, nil
}

func (s *firebaseStore) CreateUser(ctx context.Context, email, password string, emailConfirmed bool) (*Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(emailConfirmed)

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, identityerrors.ErrIdentityExists.WithCause(err)
		}
		s.logger.Error("create identity failed", zap.String("email", email), zap.Error(err))
		return nil, identityerrors.ErrProviderUnavailable.WithCause(err)
	}

	return mapRecord(record), nil
}

func (s *firebaseStore) DeleteUser(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		if auth.IsUserNotFound(err) {
			return identityerrors.ErrIdentityNotFound.WithCause(err)
		}
		s.logger.Error("delete identity failed", zap.String("id", id), zap.Error(err))
		return identityerrors.ErrProviderUnavailable.WithCause(err)
	}
	return nil
}

func (s *firebaseStore) GetUser(ctx context.Context, id string) (*Identity, error) {
	record, err := s.client.GetUser(ctx, id)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, identityerrors.ErrIdentityNotFound.WithCause(err)
		}
		return nil, identityerrors.ErrProviderUnavailable.WithCause(err)
	}
	return mapRecord(record), nil
}

// SetRole stores the role as a custom claim so clients can read it from
// their own tokens. The profiles table stays the source of truth.
func (s *firebaseStore) SetRole(ctx context.Context, id, role string) error {
	err := s.client.SetCustomUserClaims(ctx, id, map[string]interface{}{"role": role})
	if err != nil {
		if auth.IsUserNotFound(err) {
			return identityerrors.ErrIdentityNotFound.WithCause(err)
		}
		s.logger.Error("set role claim failed", zap.String("id", id), zap.Error(err))
		return identityerrors.ErrProviderUnavailable.WithCause(err)
	}
	return nil
}

func (s *firebaseStore) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, identityerrors.ErrTokenInvalid
	}

	decoded, err := s.client.VerifyIDToken(ctx, token)
	if err != nil {
		s.logger.Warn("token verification failed", zap.Error(err))
		return nil, identityerrors.ErrTokenInvalid.WithCause(err)
	}

	email, _ := decoded.Claims["email"].(string)
	confirmed, _ := decoded.Claims["email_verified"].(bool)

	return &Identity{
		ID:             decoded.UID,
		Email:          email,
		EmailConfirmed: confirmed,
	}, nil
}

func mapRecord(record *auth.UserRecord) *Identity {
	return &Identity{
		ID:             record.UID,
		Email:          record.Email,
		EmailConfirmed: record.EmailVerified,
	}
}
