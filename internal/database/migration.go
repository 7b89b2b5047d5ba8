package database

import (
	"fmt"

	"github.com/yuvraj-revolt-motors/Personal-task-tracker/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models. It owns every
// column: there are no ad-hoc ALTER TABLE attempts elsewhere.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Habit{},
		&models.HabitLog{},
		&models.Task{},
		&models.DailyLog{},
		&models.Section{},
		&models.MemoryRule{},
		&models.FinancialRecord{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedUserDefaults creates the starter sections and memory rules for a
// freshly registered user. Runs inside the registration transaction.
func SeedUserDefaults(tx *gorm.DB, userID uint) error {
	sections := []models.Section{
		{UserID: userID, Title: "Work"},
		{UserID: userID, Title: "Personal"},
	}
	if err := tx.Create(&sections).Error; err != nil {
		return fmt.Errorf("seed sections: %w", err)
	}

	rules := []models.MemoryRule{
		{UserID: userID, Content: "DSA: Minimum 1 problem daily"},
		{UserID: userID, Content: "Health is non-negotiable"},
		{UserID: userID, Content: "Consistency > Intensity"},
	}
	if err := tx.Create(&rules).Error; err != nil {
		return fmt.Errorf("seed memory rules: %w", err)
	}
	return nil
}
