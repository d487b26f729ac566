package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInquiryNotFound is returned when an inquiry is not found.
var ErrInquiryNotFound = errors.New("inquiry not found")

// InquiryFilters narrows an inquiry listing query.
type InquiryFilters struct {
	Status     entity.InquiryStatus
	PropertyID uuid.UUID
	Search     string // Matches name and email, case-insensitive.
}

// InquiryRepository defines the standard operations for inquiry persistence.
type InquiryRepository interface {
	List(ctx context.Context, filters InquiryFilters) ([]*entity.Inquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Inquiry, error)
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	Update(ctx context.Context, inquiry *entity.Inquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
