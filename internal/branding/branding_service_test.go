package branding_test

import (
	"context"
	"testing"
	"time"

	"doctrack/internal/branding"
	brandingerrors "doctrack/internal/branding/errors"
	"doctrack/internal/shared/contextutil"

	brandingMock "doctrack/internal/branding/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestBrandingService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := brandingMock.NewMockRepository(ctrl)
		svc := branding.NewService(repo)

		repo.EXPECT().
			Get(ctx).
			Return(&branding.LogoSettings{
				ID:        1,
				LogoURL:   "https://cdn.example.com/logo.png",
				AppName:   "DocTrack",
				UpdatedBy: "admin-1",
				UpdatedAt: time.Now(),
			}, nil)

		resp, err := svc.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "DocTrack", resp.AppName)
		assert.Equal(t, "https://cdn.example.com/logo.png", resp.LogoURL)
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := brandingMock.NewMockRepository(ctrl)
		svc := branding.NewService(repo)

		repo.EXPECT().
			Get(ctx).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Get(ctx)

		assert.ErrorIs(t, err, brandingerrors.ErrBrandingNotConfigured)
	})
}

func TestBrandingService_Update(t *testing.T) {
	t.Run("records the caller as updater", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := brandingMock.NewMockRepository(ctrl)
		svc := branding.NewService(repo)

		ctx := contextutil.WithUserID(context.Background(), "admin-42")

		repo.EXPECT().
			Put(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *branding.LogoSettings) error {
				assert.Equal(t, "https://cdn.example.com/new.png", s.LogoURL)
				assert.Equal(t, "DocTrack", s.AppName)
				assert.Equal(t, "admin-42", s.UpdatedBy)
				return nil
			})

		resp, err := svc.Update(ctx, branding.UpdateBrandingRequest{
			LogoURL: "https://cdn.example.com/new.png",
			AppName: "DocTrack",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin-42", resp.UpdatedBy)
	})
}
