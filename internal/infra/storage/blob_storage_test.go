package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage() (*blobStorage, func()) {
	bucket := memblob.OpenBucket(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewWithBucket(bucket, logger).(*blobStorage)

	return store, func() { bucket.Close() }
}

func TestBlobStorage_SaveReturnsUploadsPath(t *testing.T) {
	store, cleanup := newTestStorage()
	defer cleanup()

	ctx := context.Background()
	stored, err := store.Save(ctx, "villa.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored, ".jpg"))

	// The content is retrievable under the stored key.
	key := strings.TrimPrefix(stored, "/uploads/")
	data, err := store.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestBlobStorage_SaveStripsUnknownExtension(t *testing.T) {
	store, cleanup := newTestStorage()
	defer cleanup()

	stored, err := store.Save(context.Background(), "../../evil.sh", strings.NewReader("x"))
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(stored, ".sh"))
}

func TestBlobStorage_RemoveIsIdempotent(t *testing.T) {
	store, cleanup := newTestStorage()
	defer cleanup()

	ctx := context.Background()
	stored, err := store.Save(ctx, "a.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, stored))
	// A second remove of the same path is not an error.
	require.NoError(t, store.Remove(ctx, stored))
	// Foreign paths are ignored.
	require.NoError(t, store.Remove(ctx, "https://cdn.example.com/pic.jpg"))
}
