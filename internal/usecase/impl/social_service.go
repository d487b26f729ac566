package impl

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// socialService implements the SocialUsecase interface.
type socialService struct {
	socialRepo repository.SocialRepository
	logger     *slog.Logger
}

// SocialServiceParams holds dependencies for socialService, injected by Fx.
type SocialServiceParams struct {
	fx.In

	SocialRepo repository.SocialRepository
	Logger     *slog.Logger
}

// NewSocialService is the constructor for socialService.
func NewSocialService(params SocialServiceParams) usecase.SocialUsecase {
	return &socialService{
		socialRepo: params.SocialRepo,
		logger:     params.Logger,
	}
}

// List retrieves social links, optionally restricted to enabled ones.
func (srv *socialService) List(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error) {
	links, err := srv.socialRepo.List(ctx, enabledOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social links")
	}

	return links, nil
}

// Get retrieves a single social link.
func (srv *socialService) Get(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	link, err := srv.socialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSocialLinkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "social link lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load social link")
	}

	return link, nil
}

// Create persists a new social link.
func (srv *socialService) Create(ctx context.Context, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	link := &entity.SocialLink{
		Platform: input.Platform,
		URL:      input.URL,
		Enabled:  input.Enabled,
	}

	if err := srv.socialRepo.Create(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to create social link")
	}

	srv.logger.Info("Social link created", slog.Any("linkID", link.ID), slog.String("platform", link.Platform))

	return link, nil
}

// Update replaces the editable fields of a social link.
func (srv *socialService) Update(ctx context.Context, id uuid.UUID, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	link, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	link.Platform = input.Platform
	link.URL = input.URL
	link.Enabled = input.Enabled

	if err := srv.socialRepo.Update(ctx, link); err != nil {
		return nil, errors.Wrap(err, "failed to update social link")
	}

	return link, nil
}

// Delete removes a social link permanently.
func (srv *socialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.socialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSocialLinkNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "social link delete failed")
		}

		return errors.Wrap(err, "failed to delete social link")
	}

	return nil
}
