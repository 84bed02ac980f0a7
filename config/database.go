package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/flashdeck/models"
)

// Dialector picks the gorm driver from the URL: postgres URLs go to Postgres,
// anything else is treated as a SQLite DSN.
func Dialector(dbURL string) gorm.Dialector {
	if strings.HasPrefix(dbURL, "postgres://") || strings.HasPrefix(dbURL, "postgresql://") {
		return postgres.Open(dbURL)
	}
	return sqlite.Open(dbURL)
}

// Connect opens the database and migrates the flashcards table.
func Connect(dbURL string) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(dbURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&models.Flashcard{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate database: %w", err)
	}

	return db, nil
}
