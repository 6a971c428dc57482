package provisioning_test

import (
	"context"
	"errors"
	"testing"

	"doctrack/internal/identity"
	identityerrors "doctrack/internal/identity/errors"
	identityMock "doctrack/internal/identity/mock"
	"doctrack/internal/profile"
	profileMock "doctrack/internal/profile/mock"
	"doctrack/internal/provisioning"
	provisioningerrors "doctrack/internal/provisioning/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestGuard_RequireAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := identityMock.NewMockStore(ctrl)
		profiles := profileMock.NewMockRepository(ctrl)
		guard := provisioning.NewGuard(ids, profiles)

		ids.EXPECT().
			VerifyToken(ctx, "token").
			Return(&identity.Identity{ID: "uid-1", Email: "admin@corp.test"}, nil)
		profiles.EXPECT().
			FindByID(ctx, "uid-1").
			Return(&profile.Profile{ID: "uid-1", Role: profile.RoleAdmin}, nil)

		callerID, err := guard.RequireAdmin(ctx, "token")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", callerID)
	})

	t.Run("non-admin rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := identityMock.NewMockStore(ctrl)
		profiles := profileMock.NewMockRepository(ctrl)
		guard := provisioning.NewGuard(ids, profiles)

		ids.EXPECT().
			VerifyToken(ctx, "token").
			Return(&identity.Identity{ID: "uid-2"}, nil)
		profiles.EXPECT().
			FindByID(ctx, "uid-2").
			Return(&profile.Profile{ID: "uid-2", Role: profile.RoleUser}, nil)

		_, err := guard.RequireAdmin(ctx, "token")
		assert.ErrorIs(t, err, provisioningerrors.ErrAdminRequired)
	})

	t.Run("identity without profile rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := identityMock.NewMockStore(ctrl)
		profiles := profileMock.NewMockRepository(ctrl)
		guard := provisioning.NewGuard(ids, profiles)

		ids.EXPECT().
			VerifyToken(ctx, "token").
			Return(&identity.Identity{ID: "uid-3"}, nil)
		profiles.EXPECT().
			FindByID(ctx, "uid-3").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := guard.RequireAdmin(ctx, "token")
		assert.ErrorIs(t, err, provisioningerrors.ErrAdminRequired)
	})

	t.Run("invalid token surfaces provider error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := identityMock.NewMockStore(ctrl)
		profiles := profileMock.NewMockRepository(ctrl)
		guard := provisioning.NewGuard(ids, profiles)

		ids.EXPECT().
			VerifyToken(ctx, "bad").
			Return(nil, identityerrors.ErrTokenInvalid)

		_, err := guard.RequireAdmin(ctx, "bad")
		assert.ErrorIs(t, err, identityerrors.ErrTokenInvalid)
	})

	t.Run("profile lookup failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ids := identityMock.NewMockStore(ctrl)
		profiles := profileMock.NewMockRepository(ctrl)
		guard := provisioning.NewGuard(ids, profiles)

		dbErr := errors.New("connection refused")
		ids.EXPECT().
			VerifyToken(ctx, "token").
			Return(&identity.Identity{ID: "uid-4"}, nil)
		profiles.EXPECT().
			FindByID(ctx, "uid-4").
			Return(nil, dbErr)

		_, err := guard.RequireAdmin(ctx, "token")
		assert.ErrorIs(t, err, dbErr)
	})
}
