package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler serves task-history downloads.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadTasks(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := h.DB.Preload("Section").
		Where("user_id = ?", userID).
		Order("date DESC, priority DESC, id ASC").
		Find(&tasks).Error
	return tasks, err
}

func exportRow(t *models.Task) []string {
	section := ""
	if t.Section != nil {
		section = t.Section.Title
	}
	done := "no"
	if t.Completed {
		done = "yes"
	}
	kind := "ad-hoc"
	if t.HabitID != nil {
		kind = "habit"
	}
	return []string{t.Date, t.Title, strconv.Itoa(t.Priority), done, kind, section, t.Note}
}

var exportHeader = []string{"Date", "Title", "Priority", "Completed", "Kind", "Section", "Note"}

// ExportCSV streams the full task history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.loadTasks(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for i := range tasks {
		writer.Write(exportRow(&tasks[i]))
	}
}

// ExportXLSX writes the full task history as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.loadTasks(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Tasks"
	index, err := f.NewSheet(sheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to build workbook")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := make([]interface{}, len(exportHeader))
	for i, col := range exportHeader {
		header[i] = col
	}
	f.SetSheetRow(sheet, "A1", &header)

	for i := range tasks {
		row := exportRow(&tasks[i])
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to write workbook")
	}
}
