package impl

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// galleryService implements the GalleryUsecase interface.
type galleryService struct {
	galleryRepo  repository.GalleryRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// GalleryServiceParams holds dependencies for galleryService, injected by Fx.
type GalleryServiceParams struct {
	fx.In

	GalleryRepo  repository.GalleryRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewGalleryService is the constructor for galleryService.
func NewGalleryService(params GalleryServiceParams) usecase.GalleryUsecase {
	return &galleryService{
		galleryRepo:  params.GalleryRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// List retrieves gallery albums matching the filters.
func (srv *galleryService) List(ctx context.Context, filters repository.GalleryFilters) ([]*entity.GalleryAlbum, error) {
	albums, err := srv.galleryRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery albums")
	}

	return albums, nil
}

// Get retrieves a single gallery album.
func (srv *galleryService) Get(ctx context.Context, id uuid.UUID) (*entity.GalleryAlbum, error) {
	album, err := srv.galleryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "gallery album lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load gallery album")
	}

	return album, nil
}

// Create stores the uploaded images and persists a new album.
func (srv *galleryService) Create(ctx context.Context, input *usecase.GalleryAlbumInput) (*entity.GalleryAlbum, error) {
	stored, err := saveImageUploads(ctx, srv.imageStorage, input.NewImages)
	if err != nil {
		return nil, err
	}

	album := &entity.GalleryAlbum{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Images:      stored,
	}

	if err := srv.galleryRepo.Create(ctx, album); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, stored)

		return nil, errors.Wrap(err, "failed to create gallery album")
	}

	srv.logger.Info("Gallery album created", slog.Any("albumID", album.ID))

	return album, nil
}

// Update replaces the editable fields of an album. Images absent from
// KeepImages are removed from storage once the update has been persisted.
func (srv *galleryService) Update(ctx context.Context, id uuid.UUID, input *usecase.GalleryAlbumInput) (*entity.GalleryAlbum, error) {
	album, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := saveImageUploads(ctx, srv.imageStorage, input.NewImages)
	if err != nil {
		return nil, err
	}

	previousImages := album.Images

	album.Title = input.Title
	album.Description = input.Description
	album.Category = input.Category
	album.Images = append(append([]string{}, input.KeepImages...), stored...)

	if err := srv.galleryRepo.Update(ctx, album); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, stored)

		return nil, errors.Wrap(err, "failed to update gallery album")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, droppedImages(previousImages, album.Images))

	return album, nil
}

// Delete removes an album and its stored images.
func (srv *galleryService) Delete(ctx context.Context, id uuid.UUID) error {
	album, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.galleryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "gallery album delete failed")
		}

		return errors.Wrap(err, "failed to delete gallery album")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, album.Images)

	return nil
}
