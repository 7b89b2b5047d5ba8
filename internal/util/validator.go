package util

import (
	"fmt"
	"strings"
	"time"
)

// ValidateDate checks a calendar-day string (must be YYYY-MM-DD).
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateMonth checks a calendar-month string (must be YYYY-MM).
func ValidateMonth(monthStr string) error {
	if monthStr == "" {
		return fmt.Errorf("month is empty")
	}
	if _, err := time.Parse("2006-01", monthStr); err != nil {
		return fmt.Errorf("invalid month format: %w", err)
	}
	return nil
}

// ValidateTitle checks a task/habit/section title.
func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is empty")
	}
	if len(title) > 255 {
		return fmt.Errorf("title too long, max 255 characters")
	}
	return nil
}

// ValidatePriority checks a task/habit priority (1..99, higher wins).
func ValidatePriority(priority int) error {
	if priority < 1 || priority > 99 {
		return fmt.Errorf("priority out of range, got %d", priority)
	}
	return nil
}
