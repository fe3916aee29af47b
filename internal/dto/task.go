package dto

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"

// CreateTaskRequest is the ketua tim task creation payload. Exactly one
// of AssigneeUserID and AssigneeMitraID must be set; TransportDays is
// the number of reimbursable transport days for a pegawai task and
// HonorAmount the flat fee for a mitra task.
type CreateTaskRequest struct {
	ProjectID       string         `json:"project_id"        binding:"required,uuid"`
	AssigneeUserID  *string        `json:"assignee_user_id"  binding:"omitempty,uuid"`
	AssigneeMitraID *string        `json:"assignee_mitra_id" binding:"omitempty,uuid"`
	DeskripsiTugas  string         `json:"deskripsi_tugas"   binding:"required"`
	StartDate       model.DateOnly `json:"start_date"        binding:"required"`
	EndDate         model.DateOnly `json:"end_date"          binding:"required"`
	TransportDays   int            `json:"transport_days"    binding:"omitempty,min=0,max=31"`
	HonorAmount     *int64         `json:"honor_amount"      binding:"omitempty,min=0"`
}

// UpdateTaskRequest is the ketua tim task update payload.
type UpdateTaskRequest struct {
	DeskripsiTugas *string         `json:"deskripsi_tugas"`
	StartDate      *model.DateOnly `json:"start_date"`
	EndDate        *model.DateOnly `json:"end_date"`
	Status         *string         `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
}

// RespondTaskRequest is the pegawai progress update payload.
type RespondTaskRequest struct {
	Status          string  `json:"status"           binding:"required,oneof=in_progress completed"`
	ResponsePegawai *string `json:"response_pegawai"`
}

// ListTasksRequest filters task listings.
type ListTasksRequest struct {
	PaginationRequest
	ProjectID string `form:"project_id" binding:"omitempty,uuid"`
	Status    string `form:"status"     binding:"omitempty,oneof=pending in_progress completed"`
	Bulan     int    `form:"bulan"      binding:"omitempty,min=1,max=12"`
	Tahun     int    `form:"tahun"      binding:"omitempty,min=2000,max=2100"`
}
