package profile

import (
	"context"
	"time"

	"doctrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock

type Service interface {
	GetAll(ctx context.Context) ([]ProfileResponse, error)
	GetByID(ctx context.Context, id string) (ProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context) ([]ProfileResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, MapRepositoryError(err)
	}

	resp := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapToResponse(p)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateProfileRequest) (ProfileResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}

	p.FullName = req.FullName
	p.Department = req.Department
	if req.PositionID != nil {
		pid, err := uuid.Parse(*req.PositionID)
		if err == nil {
			p.PositionID = &pid
		}
	} else {
		p.PositionID = nil
	}

	if err := s.repo.Update(ctx, p); err != nil {
		l.Error("failed to update profile", zap.String("id", id), zap.Error(err))
		return ProfileResponse{}, MapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

func mapToResponse(p Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.Department != nil {
		resp.Department = *p.Department
	}
	if p.PositionID != nil {
		resp.PositionID = p.PositionID.String()
	}
	return resp
}
