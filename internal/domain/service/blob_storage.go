package service

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned when a stored object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// BlobStorage stores uploaded files such as avatars.
type BlobStorage interface {
	// Put writes the object under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Get reads the object under key together with its content type.
	Get(ctx context.Context, key string) (data []byte, contentType string, err error)
}
