package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a pre-provisioned person record created by an admin invitation.
// It stays independent of any Identity until the invitee verifies.
type Staff struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"column:name;type:varchar(255);not null"`
	Email      string     `gorm:"column:email;type:text;not null;uniqueIndex:uq_staff_email"`
	PositionID *uuid.UUID `gorm:"column:position_id;type:uuid"`
	OfficeID   *uuid.UUID `gorm:"column:office_id;type:uuid"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Position *StaffPosition `gorm:"foreignKey:PositionID;references:ID"`
	Office   *StaffOffice   `gorm:"foreignKey:OfficeID;references:ID"`
}

func (Staff) TableName() string {
	return "staff"
}

// StaffPosition joins the minimal position fields needed in responses.
type StaffPosition struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (StaffPosition) TableName() string {
	return "positions"
}

// StaffOffice joins the minimal office fields needed in responses.
type StaffOffice struct {
	ID   uuid.UUID `gorm:"primaryKey"`
	Name string    `gorm:"column:name"`
}

func (StaffOffice) TableName() string {
	return "offices"
}
