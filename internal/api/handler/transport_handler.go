package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// TransportHandler serves the transport allocation endpoints.
type TransportHandler struct {
	transportSvc *service.TransportService
}

func NewTransportHandler(transportSvc *service.TransportService) *TransportHandler {
	return &TransportHandler{transportSvc: transportSvc}
}

// ListMine handles GET /api/v1/transport/allocations. Pegawai see
// their own active allocations, dated and undated.
func (h *TransportHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	allocations, err := h.transportSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, allocations)
}

// AllocateDate handles PUT /api/v1/transport/allocations/:id/date.
func (h *TransportHandler) AllocateDate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AllocateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	alloc, err := h.transportSvc.AllocateDate(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, alloc)
}

// Cancel handles DELETE /api/v1/transport/allocations/:id.
func (h *TransportHandler) Cancel(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.transportSvc.Cancel(c.Request.Context(), c.Param("id"), userID, role); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

// TaskSummary handles GET /api/v1/tasks/:id/transport. Reports quota
// usage for one task.
func (h *TransportHandler) TaskSummary(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	summary, err := h.transportSvc.TaskSummary(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}
