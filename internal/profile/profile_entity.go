package profile

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile is the application-side user record. The primary key is the
// identity provider uid, so Profile and Identity are tied 1:1 by id.
type Profile struct {
	ID         string     `gorm:"column:id;type:text;primaryKey"`
	Email      string     `gorm:"column:email;type:text;not null;uniqueIndex:uq_profile_email"`
	FullName   string     `gorm:"column:full_name;type:varchar(255);not null"`
	Role       string     `gorm:"column:role;type:varchar(20);not null;default:user"`
	Department *string    `gorm:"column:department;type:varchar(255)"`
	PositionID *uuid.UUID `gorm:"column:position_id;type:uuid"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
