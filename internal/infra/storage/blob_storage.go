// Package storage stores uploaded images on a blob bucket.
// The production bucket is a local directory opened through gocloud's fileblob
// driver, which keeps the door open for cloud buckets without touching callers.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"estate/config"
	"estate/internal/domain/service"
)

// publicPrefix is the URL path under which stored images are served.
const publicPrefix = "/uploads/"

// blobStorage implements service.ImageStorage on top of a gocloud blob bucket.
type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the dependencies for the image storage.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the upload directory as a fileblob bucket.
func New(params Params) (service.ImageStorage, error) {
	dir := params.Config.Uploads.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{bucket: bucket, logger: params.Logger}, nil
}

// NewWithBucket wires an explicit bucket, used by tests with an in-memory bucket.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) service.ImageStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

// Save writes the content under a uuid-prefixed key and returns the stored path.
func (s *blobStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	key := uuid.New().String() + sanitizeExt(filename)

	writer, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write upload")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize upload")
	}

	s.logger.Debug("stored uploaded image", "key", key)

	return publicPrefix + key, nil
}

// Remove deletes a stored image. Unknown paths are ignored so that callers can
// clean up optimistically.
func (s *blobStorage) Remove(ctx context.Context, storedPath string) error {
	if !strings.HasPrefix(storedPath, publicPrefix) {
		// Not one of ours (absolute URL or foreign path); nothing to remove.
		return nil
	}
	key := strings.TrimPrefix(storedPath, publicPrefix)
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete upload")
	}

	return nil
}

// sanitizeExt keeps only a plain file extension from a client-supplied name.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(path.Base(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
		return ext
	default:
		return ""
	}
}
