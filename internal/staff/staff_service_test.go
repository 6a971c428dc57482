package staff_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctrack/internal/staff"
	stafferrors "doctrack/internal/staff/errors"

	staffMock "doctrack/internal/staff/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupStaffTest(t *testing.T) (*staffMock.MockRepository, staff.Service) {
	ctrl := gomock.NewController(t)
	repo := staffMock.NewMockRepository(ctrl)
	return repo, staff.NewService(repo)
}

func TestStaffService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success with preloaded names", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		posID := uuid.New()
		repo.EXPECT().
			FindAll(ctx).
			Return([]staff.Staff{
				{
					ID:         uuid.New(),
					Name:       "Ann",
					Email:      "ann@example.com",
					PositionID: &posID,
					Position:   &staff.StaffPosition{ID: posID, Name: "Clerk"},
					CreatedAt:  time.Now(),
				},
			}, nil)

		resp, err := svc.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Clerk", resp[0].Position)
		assert.Equal(t, posID.String(), resp[0].PositionID)
	})

	t.Run("repo error", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error"))

		_, err := svc.GetAll(ctx)

		assert.Error(t, err)
	})
}

func TestStaffService_GetByID(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&staff.Staff{ID: targetID, Name: "Ben", Email: "ben@example.com"}, nil)

		resp, err := svc.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, "Ben", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, targetID.String())

		assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	})
}

func TestStaffService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&staff.Staff{ID: targetID, Name: "Ben"}, nil)

		repo.EXPECT().
			Delete(ctx, targetID.String()).
			Return(nil)

		assert.NoError(t, svc.Delete(ctx, targetID.String()))
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupStaffTest(t)

		repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(ctx, targetID.String())

		assert.ErrorIs(t, err, stafferrors.ErrStaffNotFound)
	})
}

func TestStaffMapRepositoryError(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		err := staff.MapRepositoryError(
			errors.New(`duplicate key value violates unique constraint "uq_staff_email"`),
		)
		assert.ErrorIs(t, err, stafferrors.ErrStaffAlreadyExists)
	})

	t.Run("passthrough", func(t *testing.T) {
		cause := errors.New("connection reset")
		assert.Equal(t, cause, staff.MapRepositoryError(cause))
	})
}
