// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is a domain-specific error returned when a property is not found.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilters narrows a property listing query. Zero values mean "no filter";
// absent filters are never translated into empty-string predicates.
type PropertyFilters struct {
	Category entity.PropertyCategory
	Status   entity.PropertyStatus
	City     string
	Featured *bool
	Search   string // Matches name and description, case-insensitive.
}

// PropertyRepository defines the standard operations for property persistence.
type PropertyRepository interface {
	// List retrieves properties matching the filters, newest first.
	List(ctx context.Context, filters PropertyFilters) ([]*entity.Property, error)

	// FindByID retrieves a single property by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// Create persists a new property and fills in the generated ID and timestamps.
	Create(ctx context.Context, property *entity.Property) error

	// Update modifies an existing property.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property permanently. Deletion is terminal; deleting an
	// unknown ID returns ErrPropertyNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
