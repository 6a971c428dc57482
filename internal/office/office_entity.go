package office

import (
	"time"

	"github.com/google/uuid"
)

type Office struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uq_office_name"`
	Address   *string   `gorm:"column:address;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Office) TableName() string {
	return "offices"
}
