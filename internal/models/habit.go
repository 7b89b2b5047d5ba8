package models

import "time"

// Habit is a recurring template that should produce one Task per active day.
// Habits are archived, never deleted: historical tasks keep referencing them.
type Habit struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	Title      string `gorm:"size:128;not null"`
	Priority   int    `gorm:"default:1"` // higher = more important
	IsArchived bool   `gorm:"index;not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HabitLog is one completion event for a habit. At most one row per
// (habit, date). CreatedAt keeps time-of-day resolution; the grace-window
// streak math depends on it, unlike DailyLog which is date-only.
type HabitLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	HabitID   uint   `gorm:"not null;uniqueIndex:uidx_habit_log_day"`
	Date      string `gorm:"size:10;not null;uniqueIndex:uidx_habit_log_day"` // YYYY-MM-DD
	Completed bool   `gorm:"not null;default:true"`
	TimeSpent int    `gorm:"not null;default:0"` // minutes
	Note      string `gorm:"size:255"`
	CreatedAt time.Time

	Habit Habit `gorm:"constraint:OnDelete:CASCADE"`
}
