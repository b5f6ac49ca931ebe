package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteObjectStore {
	t.Helper()
	s, err := NewSQLiteObjectStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreGetMissing(t *testing.T) {
	s := newTestSQLiteStore(t)

	obj, err := s.Get(context.Background(), "nope.json")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, obj)
}

func TestSQLiteStorePutGetRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	body := []byte(`{"data":[],"meta":{"result_count":0}}`)
	metadata := map[string]string{"contentType": "application/json", "userid": "111"}

	require.NoError(t, s.Put(ctx, "111.json", body, metadata))

	obj, err := s.Get(ctx, "111.json")
	require.NoError(t, err)
	assert.Equal(t, body, obj.Body)
	assert.Equal(t, metadata, obj.Metadata)
	assert.WithinDuration(t, time.Now().UTC(), obj.UploadedAt, time.Minute)
}

func TestSQLiteStoreUpsert(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "42.json", []byte(`{"v":1}`), nil))
	require.NoError(t, s.Put(ctx, "42.json", []byte(`{"v":2}`), map[string]string{"userid": "42"}))

	obj, err := s.Get(ctx, "42.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), obj.Body)
	assert.Equal(t, "42", obj.Metadata["userid"])
}

func TestSQLiteStoreKeyIsolation(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "a.json", []byte(`{"owner":"a"}`), nil))
	require.NoError(t, s.Put(ctx, "b.json", []byte(`{"owner":"b"}`), nil))

	a, err := s.Get(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"owner":"a"}`), a.Body)

	b, err := s.Get(ctx, "b.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"owner":"b"}`), b.Body)
}
