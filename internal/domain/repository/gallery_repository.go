package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAlbumNotFound is returned when a gallery album is not found.
var ErrAlbumNotFound = errors.New("gallery album not found")

// GalleryFilters narrows a gallery listing query.
type GalleryFilters struct {
	Category string
}

// GalleryRepository defines the standard operations for gallery album persistence.
type GalleryRepository interface {
	List(ctx context.Context, filters GalleryFilters) ([]*entity.GalleryAlbum, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryAlbum, error)
	Create(ctx context.Context, album *entity.GalleryAlbum) error
	Update(ctx context.Context, album *entity.GalleryAlbum) error
	Delete(ctx context.Context, id uuid.UUID) error
}
