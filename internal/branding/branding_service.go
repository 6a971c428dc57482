package branding

import (
	"context"
	"errors"

	brandingerrors "doctrack/internal/branding/errors"
	"doctrack/internal/shared/contextutil"

	"gorm.io/gorm"
)

//go:generate mockgen -source=branding_service.go -destination=mock/branding_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (BrandingResponse, error)
	Update(ctx context.Context, req UpdateBrandingRequest) (BrandingResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (BrandingResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BrandingResponse{}, brandingerrors.ErrBrandingNotConfigured
		}
		return BrandingResponse{}, err
	}
	return mapToResponse(*settings), nil
}

func (s *service) Update(ctx context.Context, req UpdateBrandingRequest) (BrandingResponse, error) {
	settings := &LogoSettings{
		LogoURL:   req.LogoURL,
		AppName:   req.AppName,
		UpdatedBy: contextutil.GetUserID(ctx),
	}

	if err := s.repo.Put(ctx, settings); err != nil {
		return BrandingResponse{}, err
	}

	return mapToResponse(*settings), nil
}

func mapToResponse(s LogoSettings) BrandingResponse {
	return BrandingResponse{
		LogoURL:   s.LogoURL,
		AppName:   s.AppName,
		UpdatedBy: s.UpdatedBy,
		UpdatedAt: s.UpdatedAt,
	}
}
