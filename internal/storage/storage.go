package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/LukeFitzGit/MyGymLog/internal/models"
)

// The three logical keys the app persists
const (
	KeyCurrentWorkout = "current_workout"
	KeyHistory        = "workout_history"
	KeyLastDate       = "last_date"
)

// KV is the capability the core needs from a storage provider: async-safe
// get/set of strings by key, plus an atomic multi-key write.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMulti(ctx context.Context, values map[string]string) error
}

// Store is a KV backed by a single-table SQLite database
type Store struct {
	db *gorm.DB
}

// Open sets up the database connection and runs migrations
func Open(path string) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".mygymlog", "mygymlog.db"), nil
}

// Get returns the value stored under key, reporting absence separately from
// failure
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(ctx context.Context, key, value string) error {
	return upsert(s.db.WithContext(ctx), key, value)
}

// SetMulti stores every key/value pair in a single transaction, so a crash
// can never leave only some of them written
func (s *Store) SetMulti(ctx context.Context, values map[string]string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsert(db *gorm.DB, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
