package database

import (
	"fmt"

	"clinicdesk/internal/config"
	"clinicdesk/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open establishes the database connection for the configured driver.
// The returned handle is passed explicitly to the stores; there is no
// package-level connection state.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	switch cfg.DatabaseDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.PostgresURI), gormCfg)
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

// Migrate creates the patients and visits tables if they do not exist.
// AutoMigrate checks for each table first, so running it on every startup
// is safe.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Patient{}, &models.Visit{})
}
