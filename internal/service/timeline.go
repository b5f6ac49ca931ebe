package service

import (
	"context"
	"log"
	"time"

	"tweet-timeline-cache/internal/store"
)

// ErrUnavailable is returned when the upstream fetch fails and no cached
// entry exists to fall back on. It is the only error a request surfaces.
const ErrUnavailable = serviceError("failed to fetch data and no cache available")

type serviceError string

func (e serviceError) Error() string { return string(e) }

// Source identifies where a served timeline payload came from.
type Source string

const (
	// SourceCache means a fresh stored entry was served without an upstream call.
	SourceCache Source = "cache"
	// SourceFresh means the payload was just fetched from upstream.
	SourceFresh Source = "fresh"
	// SourceStale means upstream failed and an expired entry was served instead.
	SourceStale Source = "stale"
)

// CacheStatus maps the source to its X-Cache header value.
func (s Source) CacheStatus() string {
	switch s {
	case SourceCache:
		return "HIT"
	case SourceStale:
		return "STALE"
	default:
		return "MISS"
	}
}

// Fetcher retrieves a timeline payload from the upstream provider.
type Fetcher interface {
	FetchTimeline(ctx context.Context, userID string, maxResults int) ([]byte, error)
}

// CacheKey derives the store key for a subject identifier. The key is a pure
// function of the identifier alone - the page size never participates, so
// requests for the same user with different max_results share one entry.
func CacheKey(userID string) string {
	return userID + ".json"
}

// TimelineService is the read-through cache orchestrator: it serves a user's
// timeline from the object store while fresh, refreshes it from upstream when
// missing or stale, and prefers a stale entry over an error when upstream is
// down.
type TimelineService struct {
	store   store.ObjectStore
	fetcher Fetcher
	window  time.Duration

	now func() time.Time
}

// NewTimelineService creates a timeline service.
// Returns nil if either dependency is nil (both are required).
func NewTimelineService(objectStore store.ObjectStore, fetcher Fetcher, window time.Duration) *TimelineService {
	if objectStore == nil || fetcher == nil {
		return nil
	}
	return &TimelineService{
		store:   objectStore,
		fetcher: fetcher,
		window:  window,
		now:     time.Now,
	}
}

// GetTimeline returns the timeline payload for userID, byte-for-byte as last
// obtained from upstream, along with where it came from.
//
// An entry is fresh while now - uploadedAt < window. Entries dated in the
// future have negative age and count as fresh. Store faults on either the
// read or the write path are absorbed: a failed read degrades to a miss, a
// failed write still serves the fetched payload.
func (s *TimelineService) GetTimeline(ctx context.Context, userID string, maxResults int) ([]byte, Source, error) {
	key := CacheKey(userID)

	entry, err := s.store.Get(ctx, key)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("[TimelineService] Store read failed for %s, treating as miss: %v", key, err)
		}
		entry = nil
	}

	if entry != nil && entry.Age(s.now()) < s.window {
		return entry.Body, SourceCache, nil
	}

	body, err := s.fetcher.FetchTimeline(ctx, userID, maxResults)
	if err != nil {
		if entry != nil {
			log.Printf("[TimelineService] Upstream fetch failed for user %s, serving stale entry: %v", userID, err)
			return entry.Body, SourceStale, nil
		}
		log.Printf("[TimelineService] Upstream fetch failed for user %s and no cached entry exists: %v", userID, err)
		return nil, SourceFresh, ErrUnavailable
	}

	metadata := map[string]string{
		"contentType": "application/json",
		"userid":      userID,
	}
	if err := s.store.Put(ctx, key, body, metadata); err != nil {
		log.Printf("[TimelineService] Store write failed for %s, serving uncached result: %v", key, err)
	}

	return body, SourceFresh, nil
}
