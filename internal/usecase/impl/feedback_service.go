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

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// Submit records a new testimonial awaiting moderation.
func (srv *feedbackService) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	var avatar string
	if input.Avatar != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.Avatar})
		if err != nil {
			return nil, err
		}
		avatar = stored[0]
	}

	feedback := &entity.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Message: input.Message,
		Avatar:  avatar,
		Status:  entity.FeedbackPending,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{avatar})

		return nil, errors.Wrap(err, "failed to submit feedback")
	}

	srv.logger.Info("Feedback submitted", slog.Any("feedbackID", feedback.ID), slog.Int("rating", feedback.Rating))

	return feedback, nil
}

// ListApproved returns testimonials cleared for the public page.
func (srv *feedbackService) ListApproved(ctx context.Context) ([]*entity.Feedback, error) {
	return srv.List(ctx, repository.FeedbackFilters{Status: entity.FeedbackApproved})
}

// List retrieves feedback entries matching the filters.
func (srv *feedbackService) List(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error) {
	feedbacks, err := srv.feedbackRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return feedbacks, nil
}

// Get retrieves a single feedback entry.
func (srv *feedbackService) Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "feedback lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load feedback")
	}

	return feedback, nil
}

// UpdateStatus moderates a testimonial. Setting the current status again is
// a no-op so retried requests stay safe.
func (srv *feedbackService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	feedback, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if feedback.Status == status {
		return feedback, nil
	}

	if !feedback.Status.CanTransitionTo(status) {
		srv.logger.Warn("Rejected feedback status change",
			slog.Any("feedbackID", id),
			slog.String("from", string(feedback.Status)),
			slog.String("to", string(status)))

		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			"cannot move feedback from " + string(feedback.Status) + " to " + string(status))
	}

	feedback.Status = status

	if err := srv.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to update feedback status")
	}

	return feedback, nil
}

// Delete removes a feedback entry and its avatar image.
func (srv *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	feedback, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.feedbackRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "feedback delete failed")
		}

		return errors.Wrap(err, "failed to delete feedback")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, []string{feedback.Avatar})

	return nil
}
