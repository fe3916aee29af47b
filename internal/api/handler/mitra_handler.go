package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// MitraHandler serves the mitra endpoints.
type MitraHandler struct {
	mitraSvc *service.MitraService
}

func NewMitraHandler(mitraSvc *service.MitraService) *MitraHandler {
	return &MitraHandler{mitraSvc: mitraSvc}
}

// Create handles POST /api/v1/admin/mitra.
func (h *MitraHandler) Create(c *gin.Context) {
	var req dto.CreateMitraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	mitra, err := h.mitraSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, mitra)
}

// List handles GET /api/v1/mitra.
func (h *MitraHandler) List(c *gin.Context) {
	var req dto.ListMitraRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	mitra, total, err := h.mitraSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OKPage(c, mitra, total, req.Page, req.PageSize)
}

// GetByID handles GET /api/v1/mitra/:id.
func (h *MitraHandler) GetByID(c *gin.Context) {
	mitra, err := h.mitraSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, mitra)
}

// Update handles PUT /api/v1/admin/mitra/:id.
func (h *MitraHandler) Update(c *gin.Context) {
	var req dto.UpdateMitraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	mitra, err := h.mitraSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, mitra)
}

// MonthlyTotal handles GET /api/v1/mitra/:id/monthly-total?bulan=&tahun=.
// Reports committed honor against the monthly cap.
func (h *MitraHandler) MonthlyTotal(c *gin.Context) {
	var req dto.MonthRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	report, err := h.mitraSvc.MonthlyTotalReport(c.Request.Context(), c.Param("id"), req.Bulan, req.Tahun)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, report)
}

// CreateReview handles POST /api/v1/mitra/:id/reviews. Pegawai review
// mitra they worked with on a project.
func (h *MitraHandler) CreateReview(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateMitraReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	review, err := h.mitraSvc.CreateReview(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, review)
}

// ListReviews handles GET /api/v1/mitra/:id/reviews.
func (h *MitraHandler) ListReviews(c *gin.Context) {
	reviews, err := h.mitraSvc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, reviews)
}
