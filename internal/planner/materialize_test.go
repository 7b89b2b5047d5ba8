package planner

import (
	"errors"
	"testing"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"
)

func habit(id uint, title string, priority int) models.Habit {
	return models.Habit{ID: id, UserID: 1, Title: title, Priority: priority}
}

func TestMaterializeHabitTasks_AllMissing(t *testing.T) {
	habits := []models.Habit{
		habit(1, "DSA", 3),
		habit(2, "Gym", 2),
	}

	tasks, err := MaterializeHabitTasks("2024-03-01", habits, nil)
	if err != nil {
		t.Fatalf("MaterializeHabitTasks() error = %v, want nil", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}

	for i, h := range habits {
		task := tasks[i]
		if task.Date != "2024-03-01" {
			t.Errorf("task %d date = %q, want 2024-03-01", i, task.Date)
		}
		if task.Title != h.Title || task.Priority != h.Priority {
			t.Errorf("task %d = %q/%d, want %q/%d", i, task.Title, task.Priority, h.Title, h.Priority)
		}
		if task.HabitID == nil || *task.HabitID != h.ID {
			t.Errorf("task %d habit ref = %v, want %d", i, task.HabitID, h.ID)
		}
		if task.Completed {
			t.Errorf("task %d starts completed", i)
		}
	}
}

func TestMaterializeHabitTasks_SkipsExistingAndArchived(t *testing.T) {
	habits := []models.Habit{
		habit(1, "DSA", 3),
		habit(2, "Gym", 2),
		{ID: 3, UserID: 1, Title: "Old habit", Priority: 1, IsArchived: true},
	}
	existing := map[uint]bool{1: true}

	tasks, err := MaterializeHabitTasks("2024-03-01", habits, existing)
	if err != nil {
		t.Fatalf("MaterializeHabitTasks() error = %v, want nil", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].HabitID == nil || *tasks[0].HabitID != 2 {
		t.Errorf("habit ref = %v, want 2", tasks[0].HabitID)
	}
}

// Second call sees the first call's output as already existing and must
// produce nothing.
func TestMaterializeHabitTasks_Idempotent(t *testing.T) {
	habits := []models.Habit{
		habit(1, "DSA", 3),
		habit(2, "Gym", 2),
	}

	first, err := MaterializeHabitTasks("2024-03-01", habits, nil)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}

	existing := make(map[uint]bool)
	for _, task := range first {
		existing[*task.HabitID] = true
	}

	second, err := MaterializeHabitTasks("2024-03-01", habits, existing)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second call produced %d tasks, want 0", len(second))
	}
}

func TestMaterializeHabitTasks_DuplicateHabitInput(t *testing.T) {
	habits := []models.Habit{
		habit(1, "DSA", 3),
		habit(1, "DSA", 3),
	}

	_, err := MaterializeHabitTasks("2024-03-01", habits, nil)
	if !errors.Is(err, ErrDuplicateHabitTask) {
		t.Errorf("error = %v, want ErrDuplicateHabitTask", err)
	}
}

func TestMaterializeHabitTasks_NoHabits(t *testing.T) {
	tasks, err := MaterializeHabitTasks("2024-03-01", nil, nil)
	if err != nil {
		t.Fatalf("error = %v, want nil", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks, want 0", len(tasks))
	}
}
