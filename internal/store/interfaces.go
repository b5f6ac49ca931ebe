package store

import (
	"context"

	"tweet-timeline-cache/internal/model"
)

// ObjectStore defines the key-value object store the cache reads through.
// This abstraction allows swapping between the in-memory store (development)
// and a durable backend (Redis, SQLite, MySQL) without changing the service.
type ObjectStore interface {
	// Get retrieves the object stored under key. Returns ErrNotFound if the
	// key has never been written.
	Get(ctx context.Context, key string) (*model.Object, error)

	// Put stores body under key, replacing any previous object whole. The
	// store records the write timestamp itself; callers never supply it.
	Put(ctx context.Context, key string, body []byte, metadata map[string]string) error

	// Close releases the backend connection.
	Close() error
}

// StoreError is a sentinel error type for store-level conditions.
type StoreError string

func (e StoreError) Error() string { return string(e) }

const (
	// ErrNotFound indicates no object exists under the requested key.
	ErrNotFound StoreError = "object not found"
)
