package db

import (
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"github.com/hashicorp/go-hclog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/swatch/internal/models"
)

// storeSeq keeps in-memory database names unique within the process
var storeSeq atomic.Uint64

// Store holds the palettes saved during one session. The database lives in
// memory and disappears with the process.
type Store struct {
	db *gorm.DB
}

// Open creates a fresh in-memory database and runs migrations
func Open(log hclog.Logger) (*Store, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	dsn := fmt.Sprintf("file:swatch-%d?mode=memory&cache=shared", storeSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// A single pinned connection keeps the in-memory database alive
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access session store: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("session store ready", "dsn", dsn)
	return s, nil
}

// newGormLogger routes gorm warnings and errors into the app logger
func newGormLogger(log hclog.Logger) logger.Interface {
	w := log.Named("gorm").StandardLogger(&hclog.StandardLoggerOptions{
		InferLevels: true,
	})
	return logger.New(w, logger.Config{
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// runMigrations creates the schema
func (s *Store) runMigrations() error {
	return s.db.AutoMigrate(
		&models.SavedPalette{},
	)
}

// Close closes the database connection, dropping every saved palette
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
