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

// socialRepository implements the repository.SocialRepository interface using GORM.
type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository is the constructor for socialRepository.
func NewSocialRepository(db *gorm.DB) repository.SocialRepository {
	return &socialRepository{db: db}
}

// List retrieves social links ordered by platform name.
func (repo *socialRepository) List(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error) {
	query := repo.db.WithContext(ctx).Order("platform ASC")

	if enabledOnly {
		query = query.Where("enabled = ?", true)
	}

	var models []*model.SocialLinkModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list social links")
	}

	links := make([]*entity.SocialLink, 0, len(models))
	for _, m := range models {
		links = append(links, toSocialLinkDomain(m))
	}

	return links, nil
}

// FindByID retrieves a single social link by its unique ID.
func (repo *socialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	m, err := findByID[model.SocialLinkModel](ctx, repo.db, id, repository.ErrSocialLinkNotFound)
	if err != nil {
		return nil, err
	}

	return toSocialLinkDomain(m), nil
}

// Create persists a new social link.
func (repo *socialRepository) Create(ctx context.Context, link *entity.SocialLink) error {
	m := fromSocialLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required social link fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create social link")
	}

	link.ID = m.ID
	link.CreatedAt = m.CreatedAt
	link.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing social link.
func (repo *socialRepository) Update(ctx context.Context, link *entity.SocialLink) error {
	result := repo.db.WithContext(ctx).Model(&model.SocialLinkModel{}).
		Where("id = ?", link.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromSocialLinkDomain(link))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update social link")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocialLinkNotFound
	}

	return nil
}

// Delete removes a social link permanently.
func (repo *socialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.SocialLinkModel](ctx, repo.db, id, repository.ErrSocialLinkNotFound)
}

// toSocialLinkDomain converts a GORM SocialLinkModel to a domain SocialLink entity.
func toSocialLinkDomain(data *model.SocialLinkModel) *entity.SocialLink {
	if data == nil {
		return nil
	}

	return &entity.SocialLink{
		ID:        data.ID,
		Platform:  data.Platform,
		URL:       data.URL,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSocialLinkDomain converts a domain SocialLink entity to a GORM SocialLinkModel.
func fromSocialLinkDomain(data *entity.SocialLink) *model.SocialLinkModel {
	if data == nil {
		return nil
	}

	return &model.SocialLinkModel{
		ID:       data.ID,
		Platform: data.Platform,
		URL:      data.URL,
		Enabled:  data.Enabled,
	}
}
