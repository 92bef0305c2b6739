package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where attendance photos live. The local
// backend covers a single-node deployment; an object-store backend can
// drop in behind the same interface.
type FileStorage interface {
	// Upload stores the content under path and returns the storage key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete is a no-op when the file is already gone.
	Delete(ctx context.Context, path string) error
	// GetURL returns a client-fetchable URL. Backends that sign URLs
	// honor expiry; the local backend ignores it.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}
