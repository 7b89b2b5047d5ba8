package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/planner"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler produces the trailing 7-day activity summary.
type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// keyword buckets for completed-task classification
var (
	dsaKeywords = []string{"dsa", "leetcode", "problem"}
	gymKeywords = []string{"gym", "workout"}
	devKeywords = []string{"dev", "code", "backend", "playwright"}
)

func matchesAny(title string, keywords []string) bool {
	title = strings.ToLower(title)
	for _, k := range keywords {
		if strings.Contains(title, k) {
			return true
		}
	}
	return false
}

// GetStats counts distinct active days per bucket over the last 7 days,
// plus total tracked minutes.
func (h *StatsHandler) GetStats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	end := time.Now().Format(planner.DayLayout)
	start := time.Now().AddDate(0, 0, -6).Format(planner.DayLayout)

	var tasks []models.Task
	if err := h.DB.Where("user_id = ? AND date >= ? AND date <= ? AND completed = ?",
		user.ID, start, end, true).
		Find(&tasks).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	var logs []models.DailyLog
	if err := h.DB.Where("user_id = ? AND date >= ? AND date <= ?", user.ID, start, end).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load logs")
		return
	}

	dsaDays := make(map[string]bool)
	gymDays := make(map[string]bool)
	devDays := make(map[string]bool)
	for _, t := range tasks {
		if matchesAny(t.Title, dsaKeywords) {
			dsaDays[t.Date] = true
		}
		if matchesAny(t.Title, gymKeywords) {
			gymDays[t.Date] = true
		}
		if matchesAny(t.Title, devKeywords) {
			devDays[t.Date] = true
		}
	}

	totalTLE := 0
	for _, l := range logs {
		totalTLE += l.TLEMinutes
	}

	util.Success(c, util.Response{
		"start":        start,
		"end":          end,
		"dsa_problems": len(dsaDays),
		"gym_days":     len(gymDays),
		"dev_days":     len(devDays),
		"total_tle":    totalTLE,
	})
}
