package storage

import (
	"context"
	"io"
)

// Storage defines the minimal interface for media file backends.
// Intentionally simple: save a file, delete a file, get its URL.
type Storage interface {
	// Save stores a file under the given key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error

	// Delete removes a file by key. Returns nil if the file doesn't exist.
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a stored key.
	GetURL(key string) string
}
