package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackFilters narrows a feedback listing query.
type FeedbackFilters struct {
	Status entity.FeedbackStatus
	Search string // Matches name and message, case-insensitive.
}

// FeedbackRepository defines the standard operations for feedback persistence.
type FeedbackRepository interface {
	List(ctx context.Context, filters FeedbackFilters) ([]*entity.Feedback, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	Create(ctx context.Context, feedback *entity.Feedback) error
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
}
