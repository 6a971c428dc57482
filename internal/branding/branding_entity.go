package branding

import "time"

// LogoSettings is a singleton row; reads and writes always target ID 1.
type LogoSettings struct {
	ID        int16     `gorm:"column:id;primaryKey"`
	LogoURL   string    `gorm:"column:logo_url;type:text;not null"`
	AppName   string    `gorm:"column:app_name;type:varchar(255);not null"`
	UpdatedBy string    `gorm:"column:updated_by;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LogoSettings) TableName() string {
	return "logo_settings"
}

const settingsRowID int16 = 1
