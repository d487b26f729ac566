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

// inquiryRepository implements the repository.InquiryRepository interface using GORM.
type inquiryRepository struct {
	db *gorm.DB
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(db *gorm.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

// List retrieves inquiries matching the filters, newest first.
func (repo *inquiryRepository) List(ctx context.Context, filters repository.InquiryFilters) ([]*entity.Inquiry, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.PropertyID != uuid.Nil {
		query = query.Where("property_id = ?", filters.PropertyID)
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var models []*model.InquiryModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list inquiries")
	}

	inquiries := make([]*entity.Inquiry, 0, len(models))
	for _, m := range models {
		inquiries = append(inquiries, toInquiryDomain(m))
	}

	return inquiries, nil
}

// FindByID retrieves a single inquiry by its unique ID.
func (repo *inquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error) {
	m, err := findByID[model.InquiryModel](ctx, repo.db, id, repository.ErrInquiryNotFound)
	if err != nil {
		return nil, err
	}

	return toInquiryDomain(m), nil
}

// Create persists a new inquiry, including the denormalized property snapshot.
func (repo *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	m := fromInquiryDomain(inquiry)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inquiry fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create inquiry")
	}

	inquiry.ID = m.ID
	inquiry.CreatedAt = m.CreatedAt
	inquiry.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing inquiry.
func (repo *inquiryRepository) Update(ctx context.Context, inquiry *entity.Inquiry) error {
	result := repo.db.WithContext(ctx).Model(&model.InquiryModel{}).
		Where("id = ?", inquiry.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromInquiryDomain(inquiry))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update inquiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInquiryNotFound
	}

	return nil
}

// Delete removes an inquiry permanently.
func (repo *inquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.InquiryModel](ctx, repo.db, id, repository.ErrInquiryNotFound)
}

// toInquiryDomain converts a GORM InquiryModel to a domain Inquiry entity.
func toInquiryDomain(data *model.InquiryModel) *entity.Inquiry {
	if data == nil {
		return nil
	}

	inquiry := &entity.Inquiry{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Message:    data.Message,
		PropertyID: data.PropertyID,
		Status:     entity.InquiryStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	// The snapshot is present only when the listing was resolved at submission time.
	if data.PropertyName != "" {
		inquiry.Property = &entity.PropertySnapshot{
			Name:        data.PropertyName,
			City:        data.PropertyCity,
			PricePerGaj: data.PropertyPricePerGaj,
			Gaj:         data.PropertyGaj,
		}
	}

	return inquiry
}

// fromInquiryDomain converts a domain Inquiry entity to a GORM InquiryModel.
func fromInquiryDomain(data *entity.Inquiry) *model.InquiryModel {
	if data == nil {
		return nil
	}

	m := &model.InquiryModel{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Message:    data.Message,
		PropertyID: data.PropertyID,
		Status:     string(data.Status),
	}

	if data.Property != nil {
		m.PropertyName = data.Property.Name
		m.PropertyCity = data.Property.City
		m.PropertyPricePerGaj = data.Property.PricePerGaj
		m.PropertyGaj = data.Property.Gaj
	}

	return m
}
