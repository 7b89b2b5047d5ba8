package models

import "time"

// MemoryRule is a short personal principle pinned to the daily view.
type MemoryRule struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
