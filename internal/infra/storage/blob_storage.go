package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"medlink/config"
	"medlink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultContentType = "application/octet-stream"

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// BlobStorageParams holds dependencies for BlobStorage, injected by Fx
type BlobStorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the bucket named by storage.bucketURL and closes it on stop.
func NewBlobStorage(params BlobStorageParams) (service.BlobStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing blob storage")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.BlobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStorage) Get(ctx context.Context, key string) ([]byte, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", service.ErrObjectNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open object %s", key)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to read object %s", key)
	}

	contentType := reader.ContentType()
	if contentType == "" {
		contentType = defaultContentType
	}

	return data, contentType, nil
}
