package handler

import (
	"net/http"
	"sort"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HistoryHandler reconstructs the per-day history from logs and tasks.
type HistoryHandler struct {
	DB *gorm.DB
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{DB: db}
}

type historyDay struct {
	Date       string     `json:"date"`
	Note       string     `json:"note"`
	TLEMinutes int        `json:"tle_minutes"`
	Tasks      []taskResp `json:"tasks"`
}

// GetHistory groups every known date (from logs or tasks) newest first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var logs []models.DailyLog
	if err := h.DB.Where("user_id = ?", user.ID).Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load logs")
		return
	}

	var tasks []models.Task
	if err := h.DB.Preload("Section").
		Where("user_id = ?", user.ID).
		Order("priority DESC, id ASC").
		Find(&tasks).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	logByDate := make(map[string]*models.DailyLog, len(logs))
	for i := range logs {
		logByDate[logs[i].Date] = &logs[i]
	}
	tasksByDate := make(map[string][]taskResp)
	for i := range tasks {
		tasksByDate[tasks[i].Date] = append(tasksByDate[tasks[i].Date], toTaskResp(&tasks[i]))
	}

	dateSet := make(map[string]bool, len(logByDate))
	for d := range logByDate {
		dateSet[d] = true
	}
	for d := range tasksByDate {
		dateSet[d] = true
	}
	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	history := make([]historyDay, 0, len(dates))
	for _, d := range dates {
		day := historyDay{Date: d, Tasks: tasksByDate[d]}
		if day.Tasks == nil {
			day.Tasks = []taskResp{}
		}
		if l, ok := logByDate[d]; ok {
			day.Note = l.Note
			day.TLEMinutes = l.TLEMinutes
		}
		history = append(history, day)
	}

	util.Success(c, util.Response{"history": history})
}
