package store

import (
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/planner"

	"gorm.io/gorm"
)

// MaterializeHabitTasks inserts the missing habit tasks for one user and
// date as a single transaction. Safe to call repeatedly: the delta is
// computed against the tasks already present, so a retry after a failed
// batch writes exactly what is still missing.
func MaterializeHabitTasks(db *gorm.DB, userID uint, date string) error {
	var habits []models.Habit
	if err := db.Where("user_id = ? AND is_archived = ?", userID, false).Find(&habits).Error; err != nil {
		return err
	}

	var habitIDs []uint
	if err := db.Model(&models.Task{}).
		Where("user_id = ? AND date = ? AND habit_id IS NOT NULL", userID, date).
		Pluck("habit_id", &habitIDs).Error; err != nil {
		return err
	}
	existing := make(map[uint]bool, len(habitIDs))
	for _, id := range habitIDs {
		existing[id] = true
	}

	tasks, err := planner.MaterializeHabitTasks(date, habits, existing)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	// all habit tasks for the day or none
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
}
