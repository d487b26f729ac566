package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// SubmitInquiryInput defines the data submitted from the public property page.
type SubmitInquiryInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID uuid.UUID
}

// InquiryUsecase defines the interface for property inquiry operations.
type InquiryUsecase interface {
	// Submit records a new inquiry, capturing a snapshot of the referenced
	// listing so the record stays meaningful if the listing later changes.
	Submit(ctx context.Context, input *SubmitInquiryInput) (*entity.Inquiry, error)

	List(ctx context.Context, filters repository.InquiryFilters) ([]*entity.Inquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InquiryStatus) (*entity.Inquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
