package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	stafferrors "doctrack/internal/staff/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]StaffResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, MapRepositoryError(err)
	}

	resp := make([]StaffResponse, len(records))
	for i, rec := range records {
		resp[i] = MapToResponse(rec)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StaffResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffResponse{}, MapRepositoryError(err)
	}

	return MapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return MapRepositoryError(err)
	}

	return MapRepositoryError(s.repo.Delete(ctx, id))
}

// MapRepositoryError is exported because the provisioning flows create and
// compensate staff rows through this package's repository.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return stafferrors.ErrStaffNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_staff_email" {
			return stafferrors.ErrStaffAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_staff_email") {
		return stafferrors.ErrStaffAlreadyExists
	}

	return err
}

func MapToResponse(s Staff) StaffResponse {
	resp := StaffResponse{
		ID:    s.ID.String(),
		Name:  s.Name,
		Email: s.Email,
	}
	if s.PositionID != nil {
		resp.PositionID = s.PositionID.String()
	}
	if s.OfficeID != nil {
		resp.OfficeID = s.OfficeID.String()
	}
	if s.Position != nil {
		resp.Position = s.Position.Name
	}
	if s.Office != nil {
		resp.Office = s.Office.Name
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
