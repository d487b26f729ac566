package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an admin to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterAdminInput defines the data required to create a back-office account.
type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateProfileInput defines the editable fields of the caller's own account.
// The email is intentionally absent: it doubles as the login identifier and
// never changes through this path.
type UpdateProfileInput struct {
	Name     string
	Password string // Empty means keep the current password.
	Avatar   *ImageUpload
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	Admin       *entity.Admin
}

// AuthUsecase defines the interface for authentication and account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*entity.Admin, error)
	GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
	UpdateProfile(ctx context.Context, adminID uuid.UUID, input *UpdateProfileInput) (*entity.Admin, error)
}
