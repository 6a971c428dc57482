package office_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"doctrack/internal/office"
	officeerrors "doctrack/internal/office/errors"

	officeMock "doctrack/internal/office/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   office.Service
	repo      *officeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	rdb, redisMock := redismock.NewClientMock()
	repo := officeMock.NewMockRepository(ctrl)

	svc := office.NewService(repo, rdb)

	return &serviceDeps{
		service:   svc,
		repo:      repo,
		redismock: redisMock,
	}
}

func strPtr(s string) *string { return &s }

func TestOfficeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit serves from redis", func(t *testing.T) {
		deps := setupServiceTest(t)

		expected := []office.OfficeResponse{
			{ID: "off-1", Name: "Head Office"},
		}
		jsonResp, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(office.OfficeAllKey).SetVal(string(jsonResp))

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Head Office", resp[0].Name)

		deps.repo.EXPECT().FindAll(gomock.Any()).Times(0)
	})

	t.Run("cache miss loads from db and populates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(office.OfficeAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]office.Office{{ID: uuid.New(), Name: "Branch A", Address: strPtr("12 Main St")}}, nil).
			Times(1)

		deps.redismock.ExpectSet(office.OfficeAllKey, gomock.Any(), 30*time.Minute).SetVal("OK")

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Branch A", resp[0].Name)
	})

	t.Run("db error propagates", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(office.OfficeAllKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db connection error")).
			Times(1)

		resp, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestOfficeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		req := office.CreateOfficeRequest{Name: "Branch B", Address: strPtr("99 Harbor Rd")}

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *office.Office) error {
				assert.Equal(t, req.Name, o.Name)
				assert.Equal(t, req.Address, o.Address)
				return nil
			})

		deps.redismock.ExpectDel(office.OfficeAllKey).SetVal(1)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, req.Name, resp.Name)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(errors.New(`duplicate key value violates unique constraint "uq_office_name"`))

		_, err := deps.service.Create(ctx, office.CreateOfficeRequest{Name: "Branch B"})

		assert.ErrorIs(t, err, officeerrors.ErrOfficeAlreadyExists)
	})
}

func TestOfficeService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&office.Office{ID: targetID, Name: "Old"}, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, o *office.Office) error {
				assert.Equal(t, "New", o.Name)
				return nil
			})

		deps.redismock.ExpectDel(office.OfficeAllKey).SetVal(1)

		resp, err := deps.service.Update(ctx, targetID.String(), office.UpdateOfficeRequest{Name: "New"})

		assert.NoError(t, err)
		assert.Equal(t, "New", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, targetID.String(), office.UpdateOfficeRequest{Name: "New"})

		assert.ErrorIs(t, err, officeerrors.ErrOfficeNotFound)
	})
}

func TestOfficeService_Delete(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(ctx, targetID.String()).
			Return(&office.Office{ID: targetID, Name: "Branch"}, nil)

		deps.repo.EXPECT().
			Delete(ctx, targetID.String()).
			Return(nil)

		deps.redismock.ExpectDel(office.OfficeAllKey).SetVal(1)

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

		assert.ErrorIs(t, err, officeerrors.ErrOfficeNotFound)
	})
}
