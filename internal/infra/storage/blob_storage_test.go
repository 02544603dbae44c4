package storage

import (
	"io"
	"log/slog"
	"testing"

	"medlink/config"
	"medlink/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndGet(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBucketStorage(bucket, "http://localhost:8080/api/avatars/")

	url, err := store.Put(t.Context(), "avatar-1.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/avatars/avatar-1.png", url)

	data, contentType, err := store.Get(t.Context(), "avatar-1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestBlobStorage_GetMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := NewBucketStorage(bucket, "http://localhost")

	_, _, err := store.Get(t.Context(), "nope.png")
	require.ErrorIs(t, err, service.ErrObjectNotFound)
}

func TestNewBlobStorage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("opens bucket by URL", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		store, err := NewBlobStorage(BlobStorageParams{
			Lc:     lc,
			Ctx:    t.Context(),
			Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://", PublicBaseURL: "http://cdn"}},
			Logger: logger,
		})
		require.NoError(t, err)
		lc.RequireStart()

		url, err := store.Put(t.Context(), "k", "", []byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/k", url)

		_, contentType, err := store.Get(t.Context(), "k")
		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", contentType)
		lc.RequireStop()
	})

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewBlobStorage(BlobStorageParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    t.Context(),
			Config: &config.Config{Storage: &config.StorageConfig{}},
			Logger: logger,
		})
		require.Error(t, err)
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewBlobStorage(BlobStorageParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    t.Context(),
			Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "nosuch://bucket"}},
			Logger: logger,
		})
		require.Error(t, err)
	})
}
