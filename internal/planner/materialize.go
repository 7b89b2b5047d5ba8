package planner

import (
	"fmt"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

// MaterializeHabitTasks returns the tasks that must be inserted so that every
// active habit has exactly one task row on date. Habits whose id is already
// present in existing are skipped, so running it again with the previous
// output applied yields an empty delta.
//
// The caller persists the result as a single transaction; with all-or-nothing
// writes a retry simply recomputes the remaining delta.
func MaterializeHabitTasks(date string, habits []models.Habit, existing map[uint]bool) ([]models.Task, error) {
	seen := make(map[uint]bool, len(habits))
	var tasks []models.Task
	for _, h := range habits {
		if h.IsArchived || existing[h.ID] {
			continue
		}
		if seen[h.ID] {
			return nil, fmt.Errorf("%w: habit %d on %s", ErrDuplicateHabitTask, h.ID, date)
		}
		seen[h.ID] = true

		habitID := h.ID
		tasks = append(tasks, models.Task{
			UserID:   h.UserID,
			Date:     date,
			Title:    h.Title,
			Priority: h.Priority,
			HabitID:  &habitID,
		})
	}
	return tasks, nil
}
