package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctrack/internal/profile"
	profileerrors "doctrack/internal/profile/errors"

	profileMock "doctrack/internal/profile/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupProfileTest(t *testing.T) (*profileMock.MockRepository, profile.Service) {
	ctrl := gomock.NewController(t)
	repo := profileMock.NewMockRepository(ctrl)
	return repo, profile.NewService(repo)
}

func TestProfileService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		repo.EXPECT().
			FindAll(ctx).
			Return([]profile.Profile{
				{ID: "uid-1", Email: "a@example.com", FullName: "Ann", Role: "admin", CreatedAt: time.Now()},
				{ID: "uid-2", Email: "b@example.com", FullName: "Ben", Role: "user", CreatedAt: time.Now()},
			}, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Ann", resp[0].FullName)
	})

	t.Run("repo error", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error"))

		_, err := svc.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestProfileService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success maps optional fields", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		dept := "Finance"
		posID := uuid.New()
		repo.EXPECT().
			FindByID(ctx, "uid-1").
			Return(&profile.Profile{
				ID:         "uid-1",
				Email:      "a@example.com",
				FullName:   "Ann",
				Role:       "user",
				Department: &dept,
				PositionID: &posID,
				CreatedAt:  time.Now(),
			}, nil)

		resp, err := svc.GetByID(ctx, "uid-1")

		assert.NoError(t, err)
		assert.Equal(t, "Finance", resp.Department)
		assert.Equal(t, posID.String(), resp.PositionID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		repo.EXPECT().
			FindByID(ctx, "missing").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		posID := uuid.New().String()
		dept := "Operations"

		repo.EXPECT().
			FindByID(ctx, "uid-1").
			Return(&profile.Profile{ID: "uid-1", Email: "a@example.com", FullName: "Old", Role: "user"}, nil)

		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *profile.Profile) error {
				assert.Equal(t, "New Name", p.FullName)
				assert.Equal(t, "Operations", *p.Department)
				assert.Equal(t, posID, p.PositionID.String())
				return nil
			})

		resp, err := svc.Update(ctx, "uid-1", profile.UpdateProfileRequest{
			FullName:   "New Name",
			Department: &dept,
			PositionID: &posID,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.FullName)
	})

	t.Run("clearing position", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		existing := uuid.New()
		repo.EXPECT().
			FindByID(ctx, "uid-1").
			Return(&profile.Profile{ID: "uid-1", FullName: "Ann", Role: "user", PositionID: &existing}, nil)

		repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *profile.Profile) error {
				assert.Nil(t, p.PositionID)
				return nil
			})

		_, err := svc.Update(ctx, "uid-1", profile.UpdateProfileRequest{FullName: "Ann"})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupProfileTest(t)

		repo.EXPECT().
			FindByID(ctx, "missing").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Update(ctx, "missing", profile.UpdateProfileRequest{FullName: "X"})

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}
