package service

import (
	"context"
	"io"
)

// ImageStorage defines the interface for storing uploaded images.
// Implementations return a server-relative path (e.g. "/uploads/abc.jpg")
// that is persisted on the entity and resolved to a public URL on read.
type ImageStorage interface {
	// Save writes the uploaded content under a collision-free name derived
	// from filename and returns the stored server-relative path.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)

	// Remove deletes a previously stored image by its server-relative path.
	// Removing an unknown path is not an error.
	Remove(ctx context.Context, storedPath string) error
}
