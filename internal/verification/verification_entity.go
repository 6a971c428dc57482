package verification

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode proves control of an invited email address. Only the
// bcrypt hash of the 6-digit code is stored; the plaintext code exists in
// the invitation message alone. At most one live code per email is kept.
type VerificationCode struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email     string    `gorm:"column:email;type:text;not null;index"`
	CodeHash  string    `gorm:"column:code_hash;type:text;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (VerificationCode) TableName() string {
	return "verification_codes"
}
