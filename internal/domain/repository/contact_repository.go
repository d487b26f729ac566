package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact request is not found.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilters narrows a contact listing query.
type ContactFilters struct {
	Status entity.ContactStatus
	Search string // Matches name and email, case-insensitive.
}

// ContactRepository defines the standard operations for contact persistence.
type ContactRepository interface {
	List(ctx context.Context, filters ContactFilters) ([]*entity.Contact, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) error
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}
