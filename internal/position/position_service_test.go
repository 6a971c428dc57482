package position_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"doctrack/internal/position"
	positionerrors "doctrack/internal/position/errors"

	positionMock "doctrack/internal/position/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   position.Service
	repo      *positionMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := positionMock.NewMockRepository(ctrl)

	svc := position.NewService(repo, rdb)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func TestPositionService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit serves from redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := []position.PositionResponse{
			{ID: "pos-1", Name: "Analyst"},
			{ID: "pos-2", Name: "Manager"},
		}
		jsonResp, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(position.PositionAllKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Analyst", resp[0].Name)

		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)
	})

	t.Run("cache miss loads from db and populates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(position.PositionAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]position.Position{{ID: uuid.New(), Name: "Clerk"}}, nil).
			Times(1)

		deps.redismock.ExpectSet(position.PositionAllKey, gomock.Any(), 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Clerk", resp[0].Name)
	})

	t.Run("db error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(position.PositionAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error")).
			Times(1)

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestPositionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := position.CreatePositionRequest{Name: "Supervisor"}

		var createdID string
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *position.Position) error {
				assert.Equal(t, req.Name, p.Name)
				createdID = p.ID.String()
				return nil
			})

		deps.redismock.ExpectDel(position.PositionAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, createdID, resp.ID)
		assert.Equal(t, req.Name, resp.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "uq_position_name"`))

		_, err := deps.service.Create(ctx, position.CreatePositionRequest{Name: "Supervisor"})

		assert.ErrorIs(t, err, positionerrors.ErrPositionAlreadyExists)
	})
}

func TestPositionService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&position.Position{ID: targetID, Name: "Old"}, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *position.Position) error {
				assert.Equal(t, "New", p.Name)
				return nil
			})

		deps.redismock.ExpectDel(position.PositionAllKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), position.UpdatePositionRequest{Name: "New"})

		assert.NoError(t, err)
		assert.Equal(t, "New", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, targetID.String(), position.UpdatePositionRequest{Name: "New"})

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
	})
}

func TestPositionService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&position.Position{ID: targetID, Name: "Clerk"}, nil)

		deps.repo.EXPECT().
			Delete(ctx, targetID.String()).
			Return(nil)

		deps.redismock.ExpectDel(position.PositionAllKey).SetVal(1)

		err := deps.service.Delete(ctx, targetID.String())

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, targetID.String())

		assert.ErrorIs(t, err, positionerrors.ErrPositionNotFound)
	})
}
