package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tweet-timeline-cache/internal/model"
)

// MySQLObjectStore implements ObjectStore using MySQL. The caller owns the
// *sql.DB (pool settings, credentials); this store owns the schema.
type MySQLObjectStore struct {
	db *sql.DB
}

// NewMySQLObjectStore creates a MySQL-backed object store on an open
// connection and ensures the cache table exists.
func NewMySQLObjectStore(db *sql.DB) (*MySQLObjectStore, error) {
	query := `
	CREATE TABLE IF NOT EXISTS cache_objects (
		object_key VARCHAR(255) PRIMARY KEY,
		body MEDIUMBLOB NOT NULL,
		uploaded_at DATETIME(6) NOT NULL,
		metadata TEXT
	)`

	if _, err := db.Exec(query); err != nil {
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	log.Println("[MySQLObjectStore] Initialized")
	return &MySQLObjectStore{db: db}, nil
}

// Get retrieves the object stored under key.
func (s *MySQLObjectStore) Get(ctx context.Context, key string) (*model.Object, error) {
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
func (s *MySQLObjectStore) Put(ctx context.Context, key string, body []byte, metadata map[string]string) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata for %s: %w", key, err)
	}

	query := `
		INSERT INTO cache_objects (object_key, body, uploaded_at, metadata)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			body = VALUES(body),
			uploaded_at = VALUES(uploaded_at),
			metadata = VALUES(metadata)`

	_, err = s.db.ExecContext(ctx, query, key, body, time.Now().UTC(), string(metadataJSON))
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (s *MySQLObjectStore) Close() error {
	return s.db.Close()
}

// Ensure MySQLObjectStore implements ObjectStore
var _ ObjectStore = (*MySQLObjectStore)(nil)
