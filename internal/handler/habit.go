package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/planner"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HabitHandler owns habit archiving, check-ins and the habit streak.
type HabitHandler struct {
	DB            *gorm.DB
	HistoryWindow int // bounded check-in window for streak reads, in days
}

func NewHabitHandler(db *gorm.DB, historyWindowDays int) *HabitHandler {
	if historyWindowDays <= 0 {
		historyWindowDays = 100
	}
	return &HabitHandler{DB: db, HistoryWindow: historyWindowDays}
}

func (h *HabitHandler) loadOwnedHabit(c *gin.Context, user *models.User) (*models.Habit, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return nil, false
	}

	var habit models.Habit
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&habit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "habit not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load habit")
		}
		return nil, false
	}
	return &habit, true
}

// ListHabits returns the user's habit templates, active first.
func (h *HabitHandler) ListHabits(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var habits []models.Habit
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("is_archived ASC, priority DESC, id ASC").
		Find(&habits).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load habits")
		return
	}

	util.Success(c, util.Response{"habits": habits})
}

// ArchiveHabit soft-deletes a habit template. Historical tasks keep their
// back-reference; the materializer simply stops producing new ones.
func (h *HabitHandler) ArchiveHabit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	habit, ok := h.loadOwnedHabit(c, user)
	if !ok {
		return
	}

	if err := h.DB.Model(habit).Update("is_archived", true).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to archive habit")
		return
	}

	util.Success(c, util.Response{"message": "archived"})
}

type habitLogReq struct {
	Date      string `json:"date" binding:"required"`
	Completed *bool  `json:"completed"`
	TimeSpent int    `json:"time_spent"`
	Note      string `json:"note" binding:"max=255"`
}

// LogHabit records a check-in for one day. One row per (habit, date): a
// second check-in for the same day updates the row instead of duplicating.
func (h *HabitHandler) LogHabit(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	habit, ok := h.loadOwnedHabit(c, user)
	if !ok {
		return
	}
	if habit.IsArchived {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "habit is archived")
		return
	}

	var req habitLogReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date required, format YYYY-MM-DD")
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	var logRow models.HabitLog
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("habit_id = ? AND date = ?", habit.ID, req.Date).First(&logRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logRow = models.HabitLog{
				UserID:    user.ID,
				HabitID:   habit.ID,
				Date:      req.Date,
				Completed: completed,
				TimeSpent: req.TimeSpent,
				Note:      req.Note,
			}
			return tx.Create(&logRow).Error
		}
		if err != nil {
			return err
		}
		logRow.Completed = completed
		logRow.TimeSpent = req.TimeSpent
		logRow.Note = req.Note
		return tx.Save(&logRow).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save check-in")
		return
	}

	util.Success(c, util.Response{"log": logRow})
}

// HabitStreak returns the grace-window streak status for one habit,
// evaluated against ?date= (defaults to today).
func (h *HabitHandler) HabitStreak(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	habit, ok := h.loadOwnedHabit(c, user)
	if !ok {
		return
	}

	now := time.Now()
	date := c.Query("date")
	if date == "" {
		date = now.Format(planner.DayLayout)
	} else if err := util.ValidateDate(date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date, format YYYY-MM-DD")
		return
	}

	since := now.AddDate(0, 0, -h.HistoryWindow).Format(planner.DayLayout)
	var logs []models.HabitLog
	if err := h.DB.Where("habit_id = ? AND user_id = ? AND date >= ?", habit.ID, user.ID, since).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load check-ins")
		return
	}

	status := planner.DynamicStreak(date, now, logs)
	util.Success(c, util.Response{
		"habit_id": habit.ID,
		"streak":   status,
	})
}
