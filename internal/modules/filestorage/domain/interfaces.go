package domain

import (
	"context"
	"io"
)

// BlobStorage defines the interface for blob storage operations.
// This can be implemented by local filesystem, S3, MinIO, etc.
type BlobStorage interface {
	// Put stores the blob bytes under the given key
	Put(ctx context.Context, key string, r io.Reader, contentType string) error

	// Delete removes the blob stored under the given key
	Delete(ctx context.Context, key string) error
}
