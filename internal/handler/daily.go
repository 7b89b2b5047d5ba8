package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/planner"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/store"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DailyHandler serves the day view: habit materialization, the rollover task
// list, and the per-day summary upsert.
type DailyHandler struct {
	DB *gorm.DB
}

func NewDailyHandler(db *gorm.DB) *DailyHandler {
	return &DailyHandler{DB: db}
}

type taskResp struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	Title        string    `json:"title"`
	Priority     int       `json:"priority"`
	Completed    bool      `json:"completed"`
	Note         string    `json:"note"`
	HabitID      *uint     `json:"habit_id,omitempty"`
	SectionID    *uint     `json:"section_id,omitempty"`
	SectionTitle string    `json:"section_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toTaskResp(t *models.Task) taskResp {
	resp := taskResp{
		ID:        t.ID,
		Date:      t.Date,
		Title:     t.Title,
		Priority:  t.Priority,
		Completed: t.Completed,
		Note:      t.Note,
		HabitID:   t.HabitID,
		SectionID: t.SectionID,
		CreatedAt: t.CreatedAt,
	}
	if t.Section != nil {
		resp.SectionTitle = t.Section.Title
	}
	return resp
}

// visibleTasksForDate loads the rollover candidates and applies the view
// policy. Candidates are every task up to and including the date; the planner
// filters and orders them.
func visibleTasksForDate(db *gorm.DB, userID uint, date string) ([]taskResp, error) {
	var tasks []models.Task
	if err := db.Preload("Section").
		Where("user_id = ? AND date <= ?", userID, date).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	visible := planner.VisibleTasks(date, tasks)
	items := make([]taskResp, 0, len(visible))
	for i := range visible {
		items = append(items, toTaskResp(&visible[i]))
	}
	return items, nil
}

// GetDay returns the full day view for ?date=YYYY-MM-DD.
func (h *DailyHandler) GetDay(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if err := util.ValidateDate(date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date required, format YYYY-MM-DD")
		return
	}

	// summary defaults to an empty row for the date
	summary := models.DailyLog{UserID: user.ID, Date: date}
	if err := h.DB.Where("user_id = ? AND date = ?", user.ID, date).First(&summary).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load summary")
		return
	}

	// habit tasks must exist before the task list is read
	if err := store.MaterializeHabitTasks(h.DB, user.ID, date); err != nil {
		if errors.Is(err, planner.ErrDuplicateHabitTask) {
			log.Printf("materialize invariant violated for user %d on %s: %v", user.ID, date, err)
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to prepare day")
		return
	}

	tasks, err := visibleTasksForDate(h.DB, user.ID, date)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	var sections []models.Section
	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&sections).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load sections")
		return
	}

	var rules []models.MemoryRule
	if err := h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&rules).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load rules")
		return
	}

	util.Success(c, util.Response{
		"date":            summary.Date,
		"tle_minutes":     summary.TLEMinutes,
		"note":            summary.Note,
		"tomorrow_intent": summary.TomorrowIntent,
		"dsa_done":        summary.DSADone,
		"dev_done":        summary.DevDone,
		"gym_done":        summary.GymDone,
		"tasks":           tasks,
		"sections":        sections,
		"rules":           rules,
	})
}

type saveDailyReq struct {
	Date string `json:"date" binding:"required"`
	models.DailyLogPatch
}

// SaveDay upserts the per-day summary. Only fields present in the request
// body are written; everything else keeps its stored value.
func (h *DailyHandler) SaveDay(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req saveDailyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date required, format YYYY-MM-DD")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		logRow := models.DailyLog{UserID: user.ID, Date: req.Date}
		if err := tx.Where("user_id = ? AND date = ?", user.ID, req.Date).First(&logRow).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		logRow.Apply(req.DailyLogPatch)
		return tx.Save(&logRow).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save summary")
		return
	}

	util.Success(c, util.Response{"message": "saved"})
}
