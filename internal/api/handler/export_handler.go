package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the spreadsheet export endpoints.
type ExportHandler struct {
	exportSvc *service.ExportService
}

func NewExportHandler(exportSvc *service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// MonthlyRecap handles GET /api/v1/earnings/export?bulan=&tahun= and
// streams the monthly recap workbook.
func (h *ExportHandler) MonthlyRecap(c *gin.Context) {
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

	f, err := h.exportSvc.MonthlyRecap(c.Request.Context(), userID, role, req.Bulan, req.Tahun)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("rekap-transport-%04d-%02d.xlsx", req.Tahun, req.Bulan)
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
