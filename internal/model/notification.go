package model

import "time"

// Notification maps to the notifications table.
type Notification struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Title     string    `gorm:"type:varchar(200);not null"                     json:"title"`
	Message   string    `gorm:"type:text;not null"                             json:"message"`
	Type      string    `gorm:"type:varchar(20);not null;default:'info'"       json:"type"` // info | success | warning | error
	IsRead    bool      `gorm:"not null;default:false"                         json:"is_read"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (Notification) TableName() string { return "notifications" }
