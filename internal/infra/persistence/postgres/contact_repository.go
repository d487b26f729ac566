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

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// List retrieves contact requests matching the filters, newest first.
func (repo *contactRepository) List(ctx context.Context, filters repository.ContactFilters) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var models []*model.ContactModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(models))
	for _, m := range models {
		contacts = append(contacts, toContactDomain(m))
	}

	return contacts, nil
}

// FindByID retrieves a single contact request by its unique ID.
func (repo *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	m, err := findByID[model.ContactModel](ctx, repo.db, id, repository.ErrContactNotFound)
	if err != nil {
		return nil, err
	}

	return toContactDomain(m), nil
}

// Create persists a new contact request.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	m := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = m.ID
	contact.CreatedAt = m.CreatedAt
	contact.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing contact request.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := repo.db.WithContext(ctx).Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromContactDomain(contact))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact request permanently.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.ContactModel](ctx, repo.db, id, repository.ErrContactNotFound)
}

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Message:   data.Message,
		Status:    entity.ContactStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Message: data.Message,
		Status:  string(data.Status),
	}
}
