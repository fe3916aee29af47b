package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/model"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// EarningsHandler serves the earnings reporting endpoints.
type EarningsHandler struct {
	earningsSvc *service.EarningsService
}

func NewEarningsHandler(earningsSvc *service.EarningsService) *EarningsHandler {
	return &EarningsHandler{earningsSvc: earningsSvc}
}

// Monthly handles GET /api/v1/earnings/monthly?bulan=&tahun=. Admin
// sees the global picture, ketua tim only entries from their own
// projects.
func (h *EarningsHandler) Monthly(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	summary, err := h.earningsSvc.MonthlySummary(c.Request.Context(), userID, role, req.Bulan, req.Tahun)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

// Daily handles GET /api/v1/earnings/daily?date=yyyy-mm-dd.
func (h *EarningsHandler) Daily(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	date, err := model.ParseDate(c.Query("date"))
	if err != nil {
		response.BadRequest(c, 10001, "date must be yyyy-mm-dd")
		return
	}

	detail, err := h.earningsSvc.DailyDetail(c.Request.Context(), userID, role, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, detail)
}

// Me handles GET /api/v1/earnings/me?bulan=&tahun=. Pegawai
// self-service view with a rolling six month history.
func (h *EarningsHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	earnings, err := h.earningsSvc.MyEarnings(c.Request.Context(), userID, req.Bulan, req.Tahun)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, earnings)
}
