// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/pkg/errors"
)

// saveImageUploads stores each upload and returns the stored paths. If any
// save fails, the ones already written are removed so no orphans remain.
func saveImageUploads(ctx context.Context, storage service.ImageStorage, uploads []*usecase.ImageUpload) ([]string, error) {
	stored := make([]string, 0, len(uploads))

	for _, upload := range uploads {
		if upload == nil {
			continue
		}

		path, err := storage.Save(ctx, upload.Filename, upload.Content)
		if err != nil {
			for _, orphan := range stored {
				_ = storage.Remove(ctx, orphan)
			}

			return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
		}

		stored = append(stored, path)
	}

	return stored, nil
}

// removeImages best-effort deletes stored images that are no longer referenced.
// Failures are logged rather than surfaced: the entity update already succeeded.
func removeImages(ctx context.Context, storage service.ImageStorage, logger *slog.Logger, paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := storage.Remove(ctx, path); err != nil {
			logger.Warn("Failed to remove stored image", slog.String("path", path), slog.Any("error", err))
		}
	}
}

// droppedImages returns the members of previous that are absent from kept.
func droppedImages(previous, kept []string) []string {
	retained := make(map[string]struct{}, len(kept))
	for _, path := range kept {
		retained[path] = struct{}{}
	}

	var dropped []string
	for _, path := range previous {
		if _, ok := retained[path]; !ok {
			dropped = append(dropped, path)
		}
	}

	return dropped
}
