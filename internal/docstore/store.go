// Package docstore implements a small document store on SQLite (pure Go
// driver) via GORM. Records are kept as JSON documents in named collections
// inside a single table; the autoincrement row id is internal to the store
// and never included in query results.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Collection names used by the application.
const (
	StatusChecks       = "status_checks"
	ContactSubmissions = "contact_submissions"
)

// document is one stored JSON record. RowID exists only for insertion
// ordering and is never projected out of the store.
type document struct {
	RowID      uint           `gorm:"primaryKey;autoIncrement"`
	Collection string         `gorm:"type:varchar(64);not null;index:idx_docs_collection"`
	Doc        datatypes.JSON `gorm:"not null"`
}

// TableName returns the database table name for document.
func (document) TableName() string { return "documents" }

// Store persists and retrieves JSON documents in named collections.
// It is safe for concurrent use and holds a single long-lived connection
// pool that must be released with Close on shutdown.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the backing SQLite database, applies PRAGMAs,
// and migrates the documents table.
func Open(path string) (*Store, error) {
	// Fail early if the parent directory does not exist (instead of the
	// sqlite "out of memory (14)" error some platforms report).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("docstore: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// InsertOne serializes v to JSON and appends it to the collection.
func (s *Store) InsertOne(ctx context.Context, collection string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("docstore: encode document for %s: %w", collection, err)
	}
	doc := document{Collection: collection, Doc: datatypes.JSON(b)}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return fmt.Errorf("docstore: insert into %s: %w", collection, err)
	}
	return nil
}

// FindAll returns up to limit documents from the collection in insertion
// order. Only the JSON payload is projected; the internal row id stays
// inside the store.
func (s *Store) FindAll(ctx context.Context, collection string, limit int) ([]json.RawMessage, error) {
	var rows []datatypes.JSON
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Where("collection = ?", collection).
		Order("row_id").
		Limit(limit).
		Pluck("doc", &rows).Error
	if err != nil {
		return nil, fmt.Errorf("docstore: find in %s: %w", collection, err)
	}

	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r)
	}
	return out, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&document{}).
		Where("collection = ?", collection).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("docstore: count %s: %w", collection, err)
	}
	return n, nil
}
