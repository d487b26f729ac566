package impl

import (
	"context"
	"strings"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackService(repo *fakeFeedbackRepo, storage *fakeImageStorage) usecase.FeedbackUsecase {
	return NewFeedbackService(FeedbackServiceParams{
		FeedbackRepo: repo,
		ImageStorage: storage,
		Logger:       testLogger(),
	})
}

func TestFeedbackService_Submit_StartsPending(t *testing.T) {
	var created *entity.Feedback
	repo := &fakeFeedbackRepo{
		createFn: func(_ context.Context, feedback *entity.Feedback) error {
			feedback.ID = uuid.New()
			created = feedback

			return nil
		},
	}
	service := newFeedbackService(repo, &fakeImageStorage{})

	feedback, err := service.Submit(context.Background(), &usecase.SubmitFeedbackInput{
		Name:    "Happy Buyer",
		Rating:  5,
		Message: "Great service",
		Avatar:  &usecase.ImageUpload{Filename: "me.png", Content: strings.NewReader("png")},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.FeedbackPending, feedback.Status)
	assert.Equal(t, "/uploads/me.png", feedback.Avatar)
}

func TestFeedbackService_Submit_RatingOutOfRange(t *testing.T) {
	service := newFeedbackService(&fakeFeedbackRepo{}, &fakeImageStorage{})

	for _, rating := range []int{0, 6, -1} {
		_, err := service.Submit(context.Background(), &usecase.SubmitFeedbackInput{
			Name:   "Angry Buyer",
			Rating: rating,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestFeedbackService_ListApproved_FiltersByStatus(t *testing.T) {
	repo := &fakeFeedbackRepo{
		listFn: func(_ context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error) {
			assert.Equal(t, entity.FeedbackApproved, filters.Status)

			return []*entity.Feedback{{ID: uuid.New(), Status: entity.FeedbackApproved}}, nil
		},
	}
	service := newFeedbackService(repo, &fakeImageStorage{})

	approved, err := service.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Len(t, approved, 1)
}

func TestFeedbackService_UpdateStatus_ModerationIsTerminal(t *testing.T) {
	id := uuid.New()
	current := &entity.Feedback{ID: id, Status: entity.FeedbackPending}
	repo := &fakeFeedbackRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Feedback, error) {
			return current, nil
		},
		updateFn: func(_ context.Context, feedback *entity.Feedback) error {
			current = feedback

			return nil
		},
	}
	service := newFeedbackService(repo, &fakeImageStorage{})
	ctx := context.Background()

	feedback, err := service.UpdateStatus(ctx, id, entity.FeedbackApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.FeedbackApproved, feedback.Status)

	_, err = service.UpdateStatus(ctx, id, entity.FeedbackDeclined)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestFeedbackService_Delete_RemovesAvatar(t *testing.T) {
	id := uuid.New()
	repo := &fakeFeedbackRepo{
		findByIDFn: func(_ context.Context, _ uuid.UUID) (*entity.Feedback, error) {
			return &entity.Feedback{ID: id, Avatar: "/uploads/me.png"}, nil
		},
	}
	storage := &fakeImageStorage{}
	service := newFeedbackService(repo, storage)

	require.NoError(t, service.Delete(context.Background(), id))
	assert.Equal(t, []string{"/uploads/me.png"}, storage.removed)
}
