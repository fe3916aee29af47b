package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/dto"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/internal/service"
	"github.com/habstrakT808/Sistem-Manajemen-Project-BPS-sub003/pkg/response"
)

// TaskHandler serves the task endpoints.
type TaskHandler struct {
	taskSvc *service.TaskService
}

func NewTaskHandler(taskSvc *service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// Create handles POST /api/v1/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, task)
}

// List handles GET /api/v1/tasks.
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.ListTasksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	tasks, total, err := h.taskSvc.List(c.Request.Context(), userID, role, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OKPage(c, tasks, total, req.Page, req.PageSize)
}

// GetByID handles GET /api/v1/tasks/:id.
func (h *TaskHandler) GetByID(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	task, err := h.taskSvc.GetByID(c.Request.Context(), c.Param("id"), userID, role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, task)
}

// Update handles PUT /api/v1/tasks/:id.
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, task)
}

// Respond handles PUT /api/v1/tasks/:id/respond. Pegawai report
// progress on their own tasks.
func (h *TaskHandler) Respond(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RespondTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	task, err := h.taskSvc.Respond(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, task)
}

// Delete handles DELETE /api/v1/tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
