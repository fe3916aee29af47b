package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// maxICSSize caps the uploaded calendar file at 2 MiB.
const maxICSSize = 2 << 20

// ScheduleHandler serves the global schedule endpoints.
type ScheduleHandler struct {
	scheduleSvc *service.ScheduleService
}

func NewScheduleHandler(scheduleSvc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// List handles GET /api/v1/schedules. Every role needs the blackout
// ranges to plan transport dates.
func (h *ScheduleHandler) List(c *gin.Context) {
	schedules, err := h.scheduleSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, schedules)
}

// Create handles POST /api/v1/admin/schedules.
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, schedule)
}

// Delete handles DELETE /api/v1/admin/schedules/:id.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// ImportHolidays handles POST /api/v1/admin/schedules/import-holidays.
// Accepts a multipart upload with an .ics calendar under the "file"
// field and creates one blackout range per holiday event.
func (h *ScheduleHandler) ImportHolidays(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "missing calendar file upload")
		return
	}
	if fileHeader.Size > maxICSSize {
		response.BadRequest(c, 10001, "calendar file too large")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 10001, "cannot read calendar file")
		return
	}
	defer f.Close()

	result, err := h.scheduleSvc.ImportHolidays(c.Request.Context(), userID, f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, result)
}
