package config

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/hr-helper/internal/models"
)

// InitDatabase opens the session store. Without an explicit DSN every call
// gets its own private in-memory database that disappears with the process.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := cfg.Session.DSN
	if dsn == "" {
		dsn = MemoryDSN()
	}

	logLevel := logger.Silent
	if cfg.Server.Env == "development" && cfg.Log.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access session store: %w", err)
	}
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Candidate{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}

	return db, nil
}

func MemoryDSN() string {
	return fmt.Sprintf("file:session-%s?mode=memory&cache=shared", uuid.NewString())
}
