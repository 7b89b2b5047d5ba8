package planner

import "errors"

// ErrDuplicateHabitTask means the materializer was asked to create a second
// task for the same (date, habit) pair. Inputs that trigger it are a logic
// bug upstream; the caller must abort the write, not repair it.
var ErrDuplicateHabitTask = errors.New("duplicate habit task")
