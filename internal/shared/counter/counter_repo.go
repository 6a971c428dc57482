package counter

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	GetNextValue(ctx context.Context, counterType string, period string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments and returns the sequence for a counter type within
// a period (e.g. "document" / "2026"). Raw SQL upsert keeps the increment
// atomic under concurrent submissions.
func (r *repository) GetNextValue(ctx context.Context, counterType string, period string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, period, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (counter_type, period) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType, period).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
