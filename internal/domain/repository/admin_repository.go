package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAdminNotFound is returned when an admin account is not found.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository defines the standard operations for admin account persistence.
type AdminRepository interface {
	// FindByID retrieves a single admin by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	// FindByEmail retrieves a single admin by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// Create persists a new admin account.
	Create(ctx context.Context, admin *entity.Admin) error

	// Update modifies an existing admin account.
	Update(ctx context.Context, admin *entity.Admin) error
}
