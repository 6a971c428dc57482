package office

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	officeerrors "doctrack/internal/office/errors"
	"doctrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	OfficeAllKey = "offices:all"
	cacheTTL     = 30 * time.Minute
)

//go:generate mockgen -source=office_service.go -destination=mock/office_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error)
	GetAll(ctx context.Context) ([]OfficeResponse, error)
	GetByID(ctx context.Context, id string) (OfficeResponse, error)
	Update(ctx context.Context, id string, req UpdateOfficeRequest) (OfficeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreateOfficeRequest) (OfficeResponse, error) {
	o := &Office{
		ID:      uuid.New(),
		Name:    req.Name,
		Address: req.Address,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return OfficeResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)

	return mapToResponse(*o), nil
}

func (s *service) GetAll(ctx context.Context) ([]OfficeResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, OfficeAllKey).Result()
		if err == nil {
			var resp []OfficeResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OfficeAllKey, func() (interface{}, error) {
		offices, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(offices)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OfficeAllKey, jsonData, cacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return v.([]OfficeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (OfficeResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OfficeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*o), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOfficeRequest) (OfficeResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OfficeResponse{}, mapRepositoryError(err)
	}

	o.Name = req.Name
	o.Address = req.Address
	if err := s.repo.Update(ctx, o); err != nil {
		return OfficeResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx)

	return mapToResponse(*o), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OfficeAllKey).Err(); err != nil {
		contextutil.GetLogger(ctx, nil).Error("office cache invalidation failed",
			zap.String("key", OfficeAllKey),
			zap.Error(err),
		)
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return officeerrors.ErrOfficeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_office_name" {
			return officeerrors.ErrOfficeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_office_name") {
		return officeerrors.ErrOfficeAlreadyExists
	}

	return err
}

func mapToResponse(o Office) OfficeResponse {
	return OfficeResponse{
		ID:      o.ID.String(),
		Name:    o.Name,
		Address: o.Address,
	}
}

func mapToListResponse(offices []Office) []OfficeResponse {
	out := make([]OfficeResponse, 0, len(offices))
	for _, o := range offices {
		out = append(out, mapToResponse(o))
	}
	return out
}
