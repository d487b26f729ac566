package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// galleryRepository implements the repository.GalleryRepository interface using GORM.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{db: db}
}

// List retrieves gallery albums matching the filters, newest first.
func (repo *galleryRepository) List(ctx context.Context, filters repository.GalleryFilters) ([]*entity.GalleryAlbum, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var models []*model.GalleryAlbumModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gallery albums")
	}

	albums := make([]*entity.GalleryAlbum, 0, len(models))
	for _, m := range models {
		albums = append(albums, toGalleryAlbumDomain(m))
	}

	return albums, nil
}

// FindByID retrieves a single gallery album by its unique ID.
func (repo *galleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GalleryAlbum, error) {
	m, err := findByID[model.GalleryAlbumModel](ctx, repo.db, id, repository.ErrAlbumNotFound)
	if err != nil {
		return nil, err
	}

	return toGalleryAlbumDomain(m), nil
}

// Create persists a new gallery album.
func (repo *galleryRepository) Create(ctx context.Context, album *entity.GalleryAlbum) error {
	m := fromGalleryAlbumDomain(album)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required album fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gallery album")
	}

	album.ID = m.ID
	album.CreatedAt = m.CreatedAt
	album.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing gallery album.
func (repo *galleryRepository) Update(ctx context.Context, album *entity.GalleryAlbum) error {
	result := repo.db.WithContext(ctx).Model(&model.GalleryAlbumModel{}).
		Where("id = ?", album.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromGalleryAlbumDomain(album))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update gallery album")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAlbumNotFound
	}

	return nil
}

// Delete removes a gallery album permanently.
func (repo *galleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.GalleryAlbumModel](ctx, repo.db, id, repository.ErrAlbumNotFound)
}

// toGalleryAlbumDomain converts a GORM GalleryAlbumModel to a domain GalleryAlbum entity.
func toGalleryAlbumDomain(data *model.GalleryAlbumModel) *entity.GalleryAlbum {
	if data == nil {
		return nil
	}

	return &entity.GalleryAlbum{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Images:      data.Images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromGalleryAlbumDomain converts a domain GalleryAlbum entity to a GORM GalleryAlbumModel.
func fromGalleryAlbumDomain(data *entity.GalleryAlbum) *model.GalleryAlbumModel {
	if data == nil {
		return nil
	}

	return &model.GalleryAlbumModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Category:    data.Category,
		Images:      data.Images,
	}
}
