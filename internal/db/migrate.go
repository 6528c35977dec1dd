package db

import (
	"fmt"

	"github.com/lumen-studio/recruit-intake/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all models.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if err := conn.AutoMigrate(
		&models.Admin{},
		&models.Recruitment{},
		&models.Application{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}
