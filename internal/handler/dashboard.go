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
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardHandler aggregates the day view, habit check-ins and streaks in
// one response for fast initial load.
type DashboardHandler struct {
	DB            *gorm.DB
	HistoryWindow int // bounded streak-history window, in days
}

func NewDashboardHandler(db *gorm.DB, historyWindowDays int) *DashboardHandler {
	if historyWindowDays <= 0 {
		historyWindowDays = 100
	}
	return &DashboardHandler{DB: db, HistoryWindow: historyWindowDays}
}

type habitWithLog struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Priority   int    `json:"priority"`
	IsArchived bool   `json:"is_archived"`
	Completed  bool   `json:"completed"`
	TimeSpent  int    `json:"time_spent"`
	Note       string `json:"note"`
}

// GetDashboard serves ?date=YYYY-MM-DD. Independent reads run in parallel;
// the habit-task materialization is a write barrier that completes before
// the task list is read for the same date.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if err := util.ValidateDate(date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date required, format YYYY-MM-DD")
		return
	}

	var (
		summary   models.DailyLog
		habits    []models.Habit
		habitLogs []models.HabitLog
		sections  []models.Section
		history   []models.DailyLog
	)

	g, _ := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		summary = models.DailyLog{UserID: user.ID, Date: date}
		err := h.DB.Where("user_id = ? AND date = ?", user.ID, date).First(&summary).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		return h.DB.Where("user_id = ?", user.ID).Order("priority DESC, id ASC").Find(&habits).Error
	})
	g.Go(func() error {
		return h.DB.Where("user_id = ? AND date = ?", user.ID, date).Find(&habitLogs).Error
	})
	g.Go(func() error {
		return h.DB.Where("user_id = ?", user.ID).Order("id ASC").Find(&sections).Error
	})
	g.Go(func() error {
		return h.DB.Where("user_id = ?", user.ID).
			Order("date DESC").
			Limit(h.HistoryWindow).
			Find(&history).Error
	})
	g.Go(func() error {
		return store.MaterializeHabitTasks(h.DB, user.ID, date)
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, planner.ErrDuplicateHabitTask) {
			log.Printf("materialize invariant violated for user %d on %s: %v", user.ID, date, err)
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load dashboard")
		return
	}

	// after the materialization barrier
	tasks, err := visibleTasksForDate(h.DB, user.ID, date)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to load tasks")
		return
	}

	logsByHabit := make(map[uint]models.HabitLog, len(habitLogs))
	for _, l := range habitLogs {
		logsByHabit[l.HabitID] = l
	}
	habitList := make([]habitWithLog, 0, len(habits))
	for _, habit := range habits {
		item := habitWithLog{
			ID:         habit.ID,
			Title:      habit.Title,
			Priority:   habit.Priority,
			IsArchived: habit.IsArchived,
		}
		if l, ok := logsByHabit[habit.ID]; ok {
			item.Completed = l.Completed
			item.TimeSpent = l.TimeSpent
			item.Note = l.Note
		}
		habitList = append(habitList, item)
	}

	streaks := gin.H{
		"dsa": planner.CalendarStreak(func(d models.DailyLog) bool { return d.DSADone }, date, history),
		"dev": planner.CalendarStreak(func(d models.DailyLog) bool { return d.DevDone }, date, history),
		"gym": planner.CalendarStreak(func(d models.DailyLog) bool { return d.GymDone }, date, history),
	}

	util.Success(c, util.Response{
		"date":            summary.Date,
		"tle_minutes":     summary.TLEMinutes,
		"note":            summary.Note,
		"tomorrow_intent": summary.TomorrowIntent,
		"tasks":           tasks,
		"habits":          habitList,
		"sections":        sections,
		"streaks":         streaks,
		"generated_at":    time.Now(),
	})
}
