package dto

import "github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"

// CreateScheduleRequest is the admin blackout range payload.
type CreateScheduleRequest struct {
	Title       string         `json:"title"       binding:"required,max=200"`
	Description *string        `json:"description"`
	StartDate   model.DateOnly `json:"start_date"  binding:"required"`
	EndDate     model.DateOnly `json:"end_date"    binding:"required"`
}

// ImportHolidaysResult summarizes an iCalendar import.
type ImportHolidaysResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Titles   []string `json:"titles"`
}
