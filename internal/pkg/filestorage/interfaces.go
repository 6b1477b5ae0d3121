package filestorage

import (
	"context"
	"io"
)

// FileStorage stores uploaded media and hands back a public URL for it
type FileStorage interface {
	// Save writes content under objectPath (e.g. "avatars/<uuid>.png") and returns its public URL
	Save(ctx context.Context, objectPath string, content io.Reader, contentType string) (string, error)

	// Delete removes the object previously returned by Save. Missing objects are not an error.
	Delete(ctx context.Context, fileURL string) error
}
