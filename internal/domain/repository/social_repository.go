package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSocialLinkNotFound is returned when a social link is not found.
var ErrSocialLinkNotFound = errors.New("social link not found")

// SocialRepository defines the standard operations for social link persistence.
type SocialRepository interface {
	// List retrieves social links. When enabledOnly is true, disabled links are omitted.
	List(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	Create(ctx context.Context, link *entity.SocialLink) error
	Update(ctx context.Context, link *entity.SocialLink) error
	Delete(ctx context.Context, id uuid.UUID) error
}
