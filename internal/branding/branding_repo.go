package branding

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=branding_repo.go -destination=mock/branding_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (*LogoSettings, error)
	Put(ctx context.Context, settings *LogoSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*LogoSettings, error) {
	var s LogoSettings
	err := r.db.WithContext(ctx).First(&s, "id = ?", settingsRowID).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Put(ctx context.Context, settings *LogoSettings) error {
	settings.ID = settingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"logo_url", "app_name", "updated_by", "updated_at"}),
		}).
		Create(settings).Error
}
