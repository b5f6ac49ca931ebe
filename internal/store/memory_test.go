package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryObjectStore()

	obj, err := s.Get(context.Background(), "nope.json")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, obj)
}

func TestMemoryStorePutGetRoundTrip(t *testing.T) {
	s := NewMemoryObjectStore()
	body := []byte(`{"data":[{"id":"1","text":"hello"}]}`)
	metadata := map[string]string{"contentType": "application/json", "userid": "42"}

	before := time.Now()
	require.NoError(t, s.Put(context.Background(), "42.json", body, metadata))

	obj, err := s.Get(context.Background(), "42.json")
	require.NoError(t, err)
	assert.Equal(t, "42.json", obj.Key)
	assert.Equal(t, body, obj.Body)
	assert.Equal(t, metadata, obj.Metadata)
	assert.False(t, obj.UploadedAt.Before(before), "store must record the write timestamp itself")
	assert.False(t, obj.UploadedAt.After(time.Now()))
}

func TestMemoryStoreOverwriteReplacesWhole(t *testing.T) {
	s := NewMemoryObjectStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "42.json", []byte(`{"v":1}`), map[string]string{"a": "1"}))
	first, err := s.Get(ctx, "42.json")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "42.json", []byte(`{"v":2}`), nil))
	second, err := s.Get(ctx, "42.json")
	require.NoError(t, err)

	assert.Equal(t, []byte(`{"v":2}`), second.Body)
	assert.Nil(t, second.Metadata, "overwrite replaces the object, never merges")
	assert.False(t, second.UploadedAt.Before(first.UploadedAt))
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreKeyIsolation(t *testing.T) {
	s := NewMemoryObjectStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a.json", []byte(`{"owner":"a"}`), nil))
	require.NoError(t, s.Put(ctx, "b.json", []byte(`{"owner":"b"}`), nil))

	a, err := s.Get(ctx, "a.json")
	require.NoError(t, err)
	b, err := s.Get(ctx, "b.json")
	require.NoError(t, err)

	assert.Equal(t, []byte(`{"owner":"a"}`), a.Body)
	assert.Equal(t, []byte(`{"owner":"b"}`), b.Body)
}

func TestMemoryStoreCopiesBodies(t *testing.T) {
	s := NewMemoryObjectStore()
	ctx := context.Background()

	body := []byte(`{"v":1}`)
	require.NoError(t, s.Put(ctx, "42.json", body, nil))
	body[2] = 'x' // caller mutates its slice after the write

	obj, err := s.Get(ctx, "42.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), obj.Body)

	obj.Body[2] = 'y' // reader mutates the returned slice
	again, err := s.Get(ctx, "42.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), again.Body)
}
