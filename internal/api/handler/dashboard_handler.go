package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// DashboardHandler serves the admin dashboard endpoint.
type DashboardHandler struct {
	dashboardSvc *service.DashboardService
}

func NewDashboardHandler(dashboardSvc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// AdminStats handles GET /api/v1/admin/dashboard.
func (h *DashboardHandler) AdminStats(c *gin.Context) {
	stats, err := h.dashboardSvc.AdminStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, stats)
}
