package model

import "time"

// BaseModel carries the audit timestamps every table has.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Role values for users.
const (
	RoleAdmin    = "admin"
	RoleKetuaTim = "ketua_tim"
	RolePegawai  = "pegawai"
)

// Project status values.
const (
	ProjectStatusUpcoming  = "upcoming"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

// Task status values.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Earnings ledger entry types.
const (
	EarningTypeTransport = "transport"
	EarningTypeHonor     = "honor"
	EarningTypeBonus     = "bonus"
)

// Assignee / recipient types.
const (
	AssigneePegawai = "pegawai"
	AssigneeMitra   = "mitra"
)
