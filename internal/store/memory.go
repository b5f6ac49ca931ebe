package store

import (
	"context"
	"sync"
	"time"

	"tweet-timeline-cache/internal/model"
)

// MemoryObjectStore is an in-memory implementation of ObjectStore.
// Use this for development/testing or single-instance deployments.
// Objects are kept until overwritten; nothing ever evicts them.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string]*model.Object
}

// NewMemoryObjectStore creates an empty in-memory object store.
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		objects: make(map[string]*model.Object),
	}
}

// Get retrieves the object stored under key.
func (s *MemoryObjectStore) Get(ctx context.Context, key string) (*model.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, exists := s.objects[key]
	if !exists {
		return nil, ErrNotFound
	}

	body := make([]byte, len(obj.Body))
	copy(body, obj.Body)

	return &model.Object{
		Key:        obj.Key,
		Body:       body,
		UploadedAt: obj.UploadedAt,
		Metadata:   obj.Metadata,
	}, nil
}

// Put stores body under key, replacing any previous object.
func (s *MemoryObjectStore) Put(ctx context.Context, key string, body []byte, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bodyCopy := make([]byte, len(body))
	copy(bodyCopy, body)

	s.objects[key] = &model.Object{
		Key:        key,
		Body:       bodyCopy,
		UploadedAt: time.Now(),
		Metadata:   metadata,
	}

	return nil
}

// Len returns the number of stored objects.
func (s *MemoryObjectStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}

// Close is a no-op for the in-memory store.
func (s *MemoryObjectStore) Close() error {
	return nil
}

// Ensure MemoryObjectStore implements ObjectStore
var _ ObjectStore = (*MemoryObjectStore)(nil)
