package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitContactInput defines the data submitted from the public contact form.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactUsecase defines the interface for contact request operations.
type ContactUsecase interface {
	Submit(ctx context.Context, input *SubmitContactInput) (*entity.Contact, error)
	List(ctx context.Context, filters repository.ContactFilters) ([]*entity.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ContactStatus) (*entity.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
