package planner

import (
	"sort"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

// VisibleTasks applies the rollover policy for one day: tasks dated exactly
// on date, plus incomplete tasks from any earlier day. Completed tasks drop
// out of view the day after completion; future-dated tasks never appear.
// Ordered by priority descending, ties by insertion order.
func VisibleTasks(date string, tasks []models.Task) []models.Task {
	visible := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == date || (t.Date < date && !t.Completed) {
			visible = append(visible, t)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Priority != visible[j].Priority {
			return visible[i].Priority > visible[j].Priority
		}
		return visible[i].ID < visible[j].ID
	})
	return visible
}
