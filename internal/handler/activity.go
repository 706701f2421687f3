package handler

import (
	"net/http"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ActivityHandler lists the caller's recorded actions.
type ActivityHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewActivityHandler(db *gorm.DB, pageSize int) *ActivityHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &ActivityHandler{DB: db, PageSize: pageSize}
}

type activityResp struct {
	ID        uint      `json:"id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Action    string    `json:"action"`
	IP        string    `json:"ip"`
	CreatedAt time.Time `json:"created_at"`
}

// ListActivity returns the most recent activity rows for the caller.
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var rows []models.Activity
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("id DESC").
		Limit(h.PageSize).
		Find(&rows).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list activity")
		return
	}

	items := make([]activityResp, 0, len(rows))
	for _, r := range rows {
		items = append(items, activityResp{
			ID:        r.ID,
			Method:    r.Method,
			Path:      r.Path,
			Action:    r.Action,
			IP:        r.IP,
			CreatedAt: r.CreatedAt,
		})
	}

	util.OK(c, "", items)
}
