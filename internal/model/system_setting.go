package model

import "time"

// SystemSetting is the singleton settings row (id = 1). Holds the
// runtime-adjustable financial rules.
type SystemSetting struct {
	ID                 int       `gorm:"primaryKey"                         json:"id"`
	TransportDailyRate int64     `gorm:"not null;default:150000"            json:"transport_daily_rate"`
	MitraMonthlyLimit  int64     `gorm:"not null;default:3300000"           json:"mitra_monthly_limit"`
	UpdatedBy          *string   `gorm:"type:uuid"                          json:"updated_by,omitempty"`
	UpdatedAt          time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the table name.
func (SystemSetting) TableName() string { return "system_settings" }
