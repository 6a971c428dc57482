package verification

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=verification_repo.go -destination=mock/verification_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, code *VerificationCode) error
	FindLiveByEmail(ctx context.Context, email string, now time.Time) (*VerificationCode, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, code *VerificationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// FindLiveByEmail returns the newest unexpired code row for the email.
// Ordering makes the selection deterministic even if older rows linger.
func (r *repository) FindLiveByEmail(ctx context.Context, email string, now time.Time) (*VerificationCode, error) {
	var code VerificationCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND expires_at > ?", email, now).
		Order("created_at DESC").
		First(&code).Error
	return &code, err
}

func (r *repository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Delete(&VerificationCode{}, "email = ?", email).Error
}
