package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialLinkInput defines the data required to create or replace a social link.
type SocialLinkInput struct {
	Platform string
	URL      string
	Enabled  bool
}

// SocialUsecase defines the interface for social link operations.
type SocialUsecase interface {
	// List retrieves social links. When enabledOnly is true, disabled links are omitted.
	List(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	Create(ctx context.Context, input *SocialLinkInput) (*entity.SocialLink, error)
	Update(ctx context.Context, id uuid.UUID, input *SocialLinkInput) (*entity.SocialLink, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
