package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tweet-timeline-cache/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisObjectStore implements ObjectStore on top of Redis. Objects are stored
// as JSON-wrapped values with no TTL; freshness is evaluated by the service,
// never by the backend.
type RedisObjectStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds connection settings for the Redis object store.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// redisObject is the wire format stored under each key.
type redisObject struct {
	Body       []byte            `json:"body"`
	UploadedAt time.Time         `json:"uploaded_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// NewRedisObjectStore creates a Redis-backed object store and verifies the
// connection.
func NewRedisObjectStore(cfg RedisConfig) (*RedisObjectStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = "tweetcache"
	}

	log.Printf("[RedisObjectStore] Connected - DB:%d, prefix:%s", cfg.DB, keyPrefix)
	return &RedisObjectStore{client: client, keyPrefix: keyPrefix}, nil
}

func (s *RedisObjectStore) objectKey(key string) string {
	return s.keyPrefix + ":object:" + key
}

// Get retrieves the object stored under key.
func (s *RedisObjectStore) Get(ctx context.Context, key string) (*model.Object, error) {
	data, err := s.client.Get(ctx, s.objectKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}

	var stored redisObject
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", key, err)
	}

	return &model.Object{
		Key:        key,
		Body:       stored.Body,
		UploadedAt: stored.UploadedAt,
		Metadata:   stored.Metadata,
	}, nil
}

// Put stores body under key with no expiry.
func (s *RedisObjectStore) Put(ctx context.Context, key string, body []byte, metadata map[string]string) error {
	stored := redisObject{
		Body:       body,
		UploadedAt: time.Now(),
		Metadata:   metadata,
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to encode object %s: %w", key, err)
	}

	if err := s.client.Set(ctx, s.objectKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisObjectStore) Close() error {
	return s.client.Close()
}

// Ensure RedisObjectStore implements ObjectStore
var _ ObjectStore = (*RedisObjectStore)(nil)
