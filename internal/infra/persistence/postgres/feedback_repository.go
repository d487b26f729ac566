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

// feedbackRepository implements the repository.FeedbackRepository interface using GORM.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// List retrieves feedback entries matching the filters, newest first.
func (repo *feedbackRepository) List(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", string(filters.Status))
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("name ILIKE ? OR message ILIKE ?", pattern, pattern)
	}

	var models []*model.FeedbackModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedbacks := make([]*entity.Feedback, 0, len(models))
	for _, m := range models {
		feedbacks = append(feedbacks, toFeedbackDomain(m))
	}

	return feedbacks, nil
}

// FindByID retrieves a single feedback entry by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	m, err := findByID[model.FeedbackModel](ctx, repo.db, id, repository.ErrFeedbackNotFound)
	if err != nil {
		return nil, err
	}

	return toFeedbackDomain(m), nil
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = m.ID
	feedback.CreatedAt = m.CreatedAt
	feedback.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing feedback entry.
func (repo *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	result := repo.db.WithContext(ctx).Model(&model.FeedbackModel{}).
		Where("id = ?", feedback.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromFeedbackDomain(feedback))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// Delete removes a feedback entry permanently.
func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.FeedbackModel](ctx, repo.db, id, repository.ErrFeedbackNotFound)
}

// toFeedbackDomain converts a GORM FeedbackModel to a domain Feedback entity.
func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Rating:    data.Rating,
		Message:   data.Message,
		Avatar:    data.Avatar,
		Status:    entity.FeedbackStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFeedbackDomain converts a domain Feedback entity to a GORM FeedbackModel.
func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:      data.ID,
		Name:    data.Name,
		Email:   data.Email,
		Rating:  data.Rating,
		Message: data.Message,
		Avatar:  data.Avatar,
		Status:  string(data.Status),
	}
}
