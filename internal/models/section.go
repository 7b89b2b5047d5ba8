package models

import "time"

// Section is a grouping label for tasks (e.g. Work / Personal).
type Section struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"size:64;not null"`
	CreatedAt time.Time
}
