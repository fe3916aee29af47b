package dto

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"

// ProjectAssignmentInput is one pegawai or mitra attached to a project
// with its budgeted amount.
type ProjectAssignmentInput struct {
	AssigneeType  string `json:"assignee_type"  binding:"required,oneof=pegawai mitra"`
	AssigneeID    string `json:"assignee_id"    binding:"required,uuid"`
	UangTransport *int64 `json:"uang_transport" binding:"omitempty,min=0"`
	Honor         *int64 `json:"honor"          binding:"omitempty,min=0"`
}

// CreateProjectRequest is the ketua tim project creation payload.
type CreateProjectRequest struct {
	NamaProject  string                   `json:"nama_project"  binding:"required,max=255"`
	Deskripsi    string                   `json:"deskripsi"     binding:"required"`
	TanggalMulai model.DateOnly           `json:"tanggal_mulai" binding:"required"`
	Deadline     model.DateOnly           `json:"deadline"      binding:"required"`
	TeamID       *string                  `json:"team_id"       binding:"omitempty,uuid"`
	Assignments  []ProjectAssignmentInput `json:"assignments"   binding:"dive"`
}

// UpdateProjectRequest is the ketua tim project update payload.
type UpdateProjectRequest struct {
	NamaProject  *string         `json:"nama_project"  binding:"omitempty,max=255"`
	Deskripsi    *string         `json:"deskripsi"`
	TanggalMulai *model.DateOnly `json:"tanggal_mulai"`
	Deadline     *model.DateOnly `json:"deadline"`
	Status       *string         `json:"status"        binding:"omitempty,oneof=upcoming active completed"`
}

// ListProjectsRequest filters project listings.
type ListProjectsRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=upcoming active completed"`
}
