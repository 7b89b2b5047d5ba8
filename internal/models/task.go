package models

import "time"

// Task is one concrete item on a day's list. HabitID is set when the task
// was materialized from a habit template; ad-hoc tasks leave it nil.
// Incomplete tasks stay visible past their date until completed or deleted,
// so the same row rolls forward across days (never duplicated).
type Task struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Date      string `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Title     string `gorm:"size:255;not null"`
	Priority  int    `gorm:"default:1"`
	Completed bool   `gorm:"index;not null;default:false"`
	Note      string `gorm:"type:text"`
	HabitID   *uint  `gorm:"index"`
	SectionID *uint  `gorm:"index"`
	CreatedAt time.Time

	Section *Section `gorm:"constraint:OnDelete:SET NULL"`
}
