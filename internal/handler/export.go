package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"taskboard/internal/middleware"
	"taskboard/internal/models"
	"taskboard/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler downloads the caller's tasks as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"ID", "Title", "Description", "Status", "Created At"}

func (h *ExportHandler) loadTasks(c *gin.Context) ([]models.Task, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "authentication required")
		return nil, false
	}

	var tasks []models.Task
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to list tasks")
		return nil, false
	}
	return tasks, true
}

// ExportCSV writes the task list as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tasks, ok := h.loadTasks(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, t := range tasks {
		writer.Write([]string{
			fmt.Sprintf("%d", t.ID),
			t.Title,
			t.Description,
			t.Status,
			t.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
}

// ExportXLSX writes the task list as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	tasks, ok := h.loadTasks(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Tasks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create worksheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, t := range tasks {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.CreatedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 50)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 18)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to write workbook")
		return
	}
}
