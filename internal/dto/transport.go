package dto

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"

// AllocateDateRequest assigns a calendar date to an undated transport
// allocation.
type AllocateDateRequest struct {
	AllocationDate model.DateOnly `json:"allocation_date" binding:"required"`
}

// AllocationResponse is one allocation row enriched with its task.
type AllocationResponse struct {
	ID             string          `json:"id"`
	TaskID         string          `json:"task_id"`
	UserID         string          `json:"user_id"`
	Amount         int64           `json:"amount"`
	AllocationDate *model.DateOnly `json:"allocation_date,omitempty"`
	DeskripsiTugas string          `json:"deskripsi_tugas,omitempty"`
	StartDate      *model.DateOnly `json:"start_date,omitempty"`
	EndDate        *model.DateOnly `json:"end_date,omitempty"`
}

// TaskAllocationSummary reports a task's transport quota usage.
type TaskAllocationSummary struct {
	TaskID      string               `json:"task_id"`
	Quota       int                  `json:"quota"`
	Dated       int                  `json:"dated"`
	Undated     int                  `json:"undated"`
	Allocations []AllocationResponse `json:"allocations"`
}
