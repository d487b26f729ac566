package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// GalleryAlbumInput defines the data required to create or replace an album.
type GalleryAlbumInput struct {
	Title       string
	Description string
	Category    string
	KeepImages  []string // Stored paths already on the album that remain after an update.
	NewImages   []*ImageUpload
}

// GalleryUsecase defines the interface for gallery album operations.
type GalleryUsecase interface {
	List(ctx context.Context, filters repository.GalleryFilters) ([]*entity.GalleryAlbum, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.GalleryAlbum, error)
	Create(ctx context.Context, input *GalleryAlbumInput) (*entity.GalleryAlbum, error)
	Update(ctx context.Context, id uuid.UUID, input *GalleryAlbumInput) (*entity.GalleryAlbum, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
