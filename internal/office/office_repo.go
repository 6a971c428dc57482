package office

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=office_repo.go -destination=mock/office_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, o *Office) error
	FindAll(ctx context.Context) ([]Office, error)
	FindByID(ctx context.Context, id string) (*Office, error)
	Update(ctx context.Context, o *Office) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, o *Office) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Office, error) {
	var offices []Office
	err := r.db.WithContext(ctx).Order("name ASC").Find(&offices).Error
	return offices, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Office, error) {
	var o Office
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Update(ctx context.Context, o *Office) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Office{}, "id = ?", id).Error
}
