package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitFeedbackInput defines a testimonial submitted by a site visitor.
type SubmitFeedbackInput struct {
	Name    string
	Email   string
	Rating  int
	Message string
	Avatar  *ImageUpload
}

// FeedbackUsecase defines the interface for testimonial moderation operations.
type FeedbackUsecase interface {
	// Submit records a new testimonial in the pending moderation state.
	Submit(ctx context.Context, input *SubmitFeedbackInput) (*entity.Feedback, error)

	// ListApproved returns testimonials cleared for the public page.
	ListApproved(ctx context.Context) ([]*entity.Feedback, error)

	List(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
