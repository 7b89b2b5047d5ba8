package planner

import (
	"testing"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

func task(id uint, date string, priority int, completed bool) models.Task {
	return models.Task{ID: id, UserID: 1, Date: date, Priority: priority, Completed: completed}
}

func TestVisibleTasks_RolloverPredicate(t *testing.T) {
	tasks := []models.Task{
		task(1, "2024-03-01", 1, false), // overdue, incomplete -> visible
		task(2, "2024-03-01", 1, true),  // overdue, completed -> hidden
		task(3, "2024-03-03", 1, false), // today -> visible
		task(4, "2024-03-03", 1, true),  // today, completed -> still visible today
		task(5, "2024-03-04", 1, false), // future -> hidden
	}

	visible := VisibleTasks("2024-03-03", tasks)

	got := make(map[uint]bool)
	for _, task := range visible {
		got[task.ID] = true
	}
	for _, id := range []uint{1, 3, 4} {
		if !got[id] {
			t.Errorf("task %d missing from view", id)
		}
	}
	for _, id := range []uint{2, 5} {
		if got[id] {
			t.Errorf("task %d should not be visible", id)
		}
	}
}

// An incomplete overdue task stays visible on every later day and disappears
// the moment it completes.
func TestVisibleTasks_RolloverMonotonicity(t *testing.T) {
	open := task(1, "2024-03-01", 1, false)

	for _, date := range []string{"2024-03-02", "2024-03-10", "2025-01-01"} {
		if len(VisibleTasks(date, []models.Task{open})) != 1 {
			t.Errorf("incomplete task hidden on %s", date)
		}
	}

	done := open
	done.Completed = true
	if len(VisibleTasks("2024-03-02", []models.Task{done})) != 0 {
		t.Error("completed overdue task still visible")
	}
}

func TestVisibleTasks_Ordering(t *testing.T) {
	tasks := []models.Task{
		task(1, "2024-03-03", 3, false),
		task(2, "2024-03-03", 1, false),
		task(3, "2024-03-03", 2, false),
	}

	visible := VisibleTasks("2024-03-03", tasks)

	want := []int{3, 2, 1}
	if len(visible) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(visible), len(want))
	}
	for i, p := range want {
		if visible[i].Priority != p {
			t.Errorf("position %d priority = %d, want %d", i, visible[i].Priority, p)
		}
	}
}

func TestVisibleTasks_StableTieBreak(t *testing.T) {
	tasks := []models.Task{
		task(7, "2024-03-03", 2, false),
		task(3, "2024-03-03", 2, false),
		task(5, "2024-03-03", 2, false),
	}

	visible := VisibleTasks("2024-03-03", tasks)

	want := []uint{3, 5, 7} // creation order
	for i, id := range want {
		if visible[i].ID != id {
			t.Errorf("position %d id = %d, want %d", i, visible[i].ID, id)
		}
	}
}
