package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TaskHandler serves task CRUD. Every route behind it runs after
// AuthMiddleware, so a current user is always available.
type TaskHandler struct {
	DB *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

type createTaskReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// updateTaskReq uses pointers so absent fields can be told apart from
// empty ones; updates merge instead of replacing.
type updateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type taskResp struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResp(t *models.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// parseTaskID reads the :id route parameter.
func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return uint(id), true
}

// CreateTask stores a new task stamped with the caller's user id.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "title is required")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := util.ValidateTitle(req.Title); err != nil {
		util.Error(c, http.StatusBadRequest, "title is required")
		return
	}

	if req.Status == "" {
		req.Status = models.StatusPending
	}
	if err := util.ValidateStatus(req.Status); err != nil {
		util.Error(c, http.StatusBadRequest, "status must be pending, in_progress or completed")
		return
	}

	task := models.Task{
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := h.DB.Create(&task).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create task")
		return
	}

	util.Created(c, "task created successfully", toTaskResp(&task))
}

// ListTasks returns the caller's tasks, newest first. An optional
// ?status= query narrows the list.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		if err := util.ValidateStatus(status); err != nil {
			util.Error(c, http.StatusBadRequest, "status must be pending, in_progress or completed")
			return
		}
		q = q.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := q.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	items := make([]taskResp, 0, len(tasks))
	for i := range tasks {
		items = append(items, toTaskResp(&tasks[i]))
	}

	util.OK(c, "", items)
}

// GetTask returns one task. Tasks owned by other users are reported as
// not found rather than forbidden, so ids cannot be probed.
func (h *TaskHandler) GetTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var task models.Task
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "task not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load task")
		}
		return
	}

	util.OK(c, "", toTaskResp(&task))
}

// UpdateTask applies a partial update to the caller's own task. Fields
// absent from the body keep their stored values.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var task models.Task
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "task not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "failed to load task")
		}
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := util.ValidateTitle(title); err != nil {
			util.Error(c, http.StatusBadRequest, "title must not be empty")
			return
		}
		task.Title = title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if err := util.ValidateStatus(*req.Status); err != nil {
			util.Error(c, http.StatusBadRequest, "status must be pending, in_progress or completed")
			return
		}
		task.Status = *req.Status
	}

	if err := h.DB.Save(&task).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to update task")
		return
	}

	util.OK(c, "task updated successfully", toTaskResp(&task))
}

// DeleteTask removes the caller's own task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, ok := parseTaskID(c)
	if !ok {
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Task{})
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "failed to delete task")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "task not found")
		return
	}

	util.OK(c, "task deleted successfully", nil)
}
