package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// ProjectHandler serves the project endpoints.
type ProjectHandler struct {
	projectSvc *service.ProjectService
}

func NewProjectHandler(projectSvc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// Create handles POST /api/v1/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, project)
}

// List handles GET /api/v1/projects. Admin sees everything, ketua tim
// their own projects, pegawai the projects they are a member of.
func (h *ProjectHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.ListProjectsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	projects, total, err := h.projectSvc.List(c.Request.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OKPage(c, projects, total, req.Page, req.PageSize)
}

// GetByID handles GET /api/v1/projects/:id.
func (h *ProjectHandler) GetByID(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	project, err := h.projectSvc.GetByID(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, project)
}

// Update handles PUT /api/v1/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	project, err := h.projectSvc.Update(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, project)
}

// Delete handles DELETE /api/v1/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.projectSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
