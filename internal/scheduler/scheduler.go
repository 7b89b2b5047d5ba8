package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/planner"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/store"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler pre-materializes habit tasks for the new day so the first page
// load of the morning does not pay the write. Materialization is idempotent,
// so a failed run is simply retried on the next tick (or absorbed by the
// on-request materialization).
type Scheduler struct {
	db   *gorm.DB
	cron *cron.Cron
	spec string
}

func New(db *gorm.DB, spec string) *Scheduler {
	if spec == "" {
		spec = "5 0 * * *"
	}
	return &Scheduler{
		db:   db,
		cron: cron.New(),
		spec: spec,
	}
}

// Start registers the nightly job and launches the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.materializeToday); err != nil {
		return fmt.Errorf("schedule materialize job: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) materializeToday() {
	date := time.Now().Format(planner.DayLayout)

	var userIDs []uint
	if err := s.db.Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		log.Printf("scheduler: list users: %v", err)
		return
	}

	for _, userID := range userIDs {
		if err := store.MaterializeHabitTasks(s.db, userID, date); err != nil {
			log.Printf("scheduler: materialize user %d on %s: %v", userID, date, err)
		}
	}
}
