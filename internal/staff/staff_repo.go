package staff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, s *Staff) error
	FindByID(ctx context.Context, id string) (*Staff, error)
	FindByEmail(ctx context.Context, email string) (*Staff, error)
	FindAll(ctx context.Context) ([]Staff, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Office").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	var s Staff
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Office").
		First(&s, "email = ?", email).Error
	return &s, err
}

func (r *repository) FindAll(ctx context.Context) ([]Staff, error) {
	var records []Staff
	err := r.db.WithContext(ctx).
		Preload("Position").
		Preload("Office").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Staff{}, "id = ?", id).Error
}
