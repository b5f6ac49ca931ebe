package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"tweet-timeline-cache/internal/model"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteObjectStore implements ObjectStore using SQLite.
// Thread-safe with WAL mode for high-concurrency reads.
type SQLiteObjectStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteObjectStore creates a SQLite-backed object store.
// dbPath is the path to the SQLite database file (e.g., "./data/cache.db")
func NewSQLiteObjectStore(dbPath string) (*SQLiteObjectStore, error) {
	// Open with WAL mode and other optimizations
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite connection pool settings
	db.SetMaxOpenConns(1) // SQLite only supports 1 writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createObjectTable(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Printf("[SQLiteObjectStore] Initialized with database: %s", dbPath)
	return &SQLiteObjectStore{db: db}, nil
}

// createObjectTable creates the cache objects table.
func createObjectTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS cache_objects (
		object_key TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		uploaded_at DATETIME NOT NULL,
		metadata TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_uploaded_at ON cache_objects(uploaded_at);
	`
	_, err := db.Exec(query)
	return err
}

// Get retrieves the object stored under key.
func (s *SQLiteObjectStore) Get(ctx context.Context, key string) (*model.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT body, uploaded_at, metadata FROM cache_objects WHERE object_key = ?`

	var body []byte
	var uploadedAt time.Time
	var metadataJSON sql.NullString

	err := s.db.QueryRowContext(ctx, query, key).Scan(&body, &uploadedAt, &metadataJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	var metadata map[string]string
	if metadataJSON.Valid && metadataJSON.String != "" {
		if err := json.Unmarshal([]byte(metadataJSON.String), &metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", key, err)
		}
	}

	return &model.Object{
		Key:        key,
		Body:       body,
		UploadedAt: uploadedAt,
		Metadata:   metadata,
	}, nil
}

// Put stores body under key, replacing any previous object.
func (s *SQLiteObjectStore) Put(ctx context.Context, key string, body []byte, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata for %s: %w", key, err)
	}

	query := `
		INSERT INTO cache_objects (object_key, body, uploaded_at, metadata)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(object_key) DO UPDATE SET
			body = excluded.body,
			uploaded_at = excluded.uploaded_at,
			metadata = excluded.metadata`

	_, err = s.db.ExecContext(ctx, query, key, body, time.Now().UTC(), string(metadataJSON))
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteObjectStore) Close() error {
	return s.db.Close()
}

// Ensure SQLiteObjectStore implements ObjectStore
var _ ObjectStore = (*SQLiteObjectStore)(nil)
