package model

import "time"

// TransportAllocation is one reimbursable transport day for a
// task/pegawai pair. Rows are pre-created up to the task's
// transport_days quota with a null allocation date; the pegawai picks
// the concrete date later. CanceledAt is a soft-delete marker: canceled
// rows are excluded from every sum.
type TransportAllocation struct {
	ID             string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TaskID         string     `gorm:"type:uuid;not null"                             json:"task_id"`
	UserID         string     `gorm:"type:uuid;not null"                             json:"user_id"`
	Amount         int64      `gorm:"not null"                                       json:"amount"`
	AllocationDate *DateOnly  `gorm:"type:date"                                      json:"allocation_date,omitempty"`
	AllocatedAt    *time.Time `json:"allocated_at,omitempty"`
	CanceledAt     *time.Time `json:"canceled_at,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Task *Task `gorm:"foreignKey:TaskID;references:ID" json:"task,omitempty"`
}

// TableName sets the table name.
func (TransportAllocation) TableName() string { return "task_transport_allocations" }

// IsActive reports whether the allocation has not been canceled.
func (a *TransportAllocation) IsActive() bool {
	return a.CanceledAt == nil
}

// IsDated reports whether a calendar date has been chosen.
func (a *TransportAllocation) IsDated() bool {
	return a.AllocationDate != nil
}
