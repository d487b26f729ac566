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

// propertyRepository implements the repository.PropertyRepository interface using GORM.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

// List retrieves properties matching the filters, newest first.
// Zero-valued filters are omitted from the query entirely.
func (repo *propertyRepository) List(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Category != "" {
		query = query.Where("category = ?", string(filters.Category))
	}
	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", filters.City)
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var models []*model.PropertyModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(models))
	for _, m := range models {
		properties = append(properties, toPropertyDomain(m))
	}

	return properties, nil
}

// FindByID retrieves a single property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	m, err := findByID[model.PropertyModel](ctx, repo.db, id, repository.ErrPropertyNotFound)
	if err != nil {
		return nil, err
	}

	return toPropertyDomain(m), nil
}

// Create persists a new property and fills in the generated ID and timestamps.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	m := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	property.ID = m.ID
	property.CreatedAt = m.CreatedAt
	property.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing property.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	m := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property permanently.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.PropertyModel](ctx, repo.db, id, repository.ErrPropertyNotFound)
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		City:        data.City,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		PricePerGaj: data.PricePerGaj,
		Gaj:         data.Gaj,
		Category:    entity.PropertyCategory(data.Category),
		Status:      entity.PropertyStatus(data.Status),
		Featured:    data.Featured,
		Images:      data.Images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		City:        data.City,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		PricePerGaj: data.PricePerGaj,
		Gaj:         data.Gaj,
		Category:    string(data.Category),
		Status:      string(data.Status),
		Featured:    data.Featured,
		Images:      data.Images,
	}
}
