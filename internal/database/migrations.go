package database

import (
	"fmt"

	"github.com/yutasaki/todo-list-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
		table   string
	}{
		// Task indexes for the owner lookup and newest-first ordering
		{&models.Task{}, "idx_tasks_user_id", "user_id", "tasks"},
		{&models.Task{}, "idx_tasks_created_at", "created_at", "tasks"},

		// OTP lookup by email
		{&models.PasswordOTP{}, "idx_password_otps_email", "email", "password_otps"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
