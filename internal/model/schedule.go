package model

import "time"

// GlobalSchedule is an admin-managed blackout range: no transport
// allocation may be dated inside [StartDate, EndDate].
type GlobalSchedule struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Description *string   `gorm:"type:text"                                      json:"description,omitempty"`
	StartDate   DateOnly  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate     DateOnly  `gorm:"type:date;not null"                             json:"end_date"`
	CreatedBy   string    `gorm:"type:uuid;not null"                             json:"created_by"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (GlobalSchedule) TableName() string { return "global_schedules" }

// Covers reports whether the blackout range contains the given date.
func (s *GlobalSchedule) Covers(d DateOnly) bool {
	return d.InRange(s.StartDate, s.EndDate)
}
