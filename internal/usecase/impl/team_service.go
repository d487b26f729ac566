package impl

import (
	"context"
	"log/slog"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// teamService implements the TeamUsecase interface.
type teamService struct {
	teamRepo     repository.TeamRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// TeamServiceParams holds dependencies for teamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TeamRepo     repository.TeamRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		teamRepo:     params.TeamRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// List retrieves all staff profiles in display order.
func (srv *teamService) List(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := srv.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	return members, nil
}

// Get retrieves a single staff profile.
func (srv *teamService) Get(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	member, err := srv.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "team member lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load team member")
	}

	return member, nil
}

// Create stores the photo and persists a new staff profile.
func (srv *teamService) Create(ctx context.Context, input *usecase.TeamMemberInput) (*entity.TeamMember, error) {
	var photo string
	if input.Photo != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.Photo})
		if err != nil {
			return nil, err
		}
		photo = stored[0]
	}

	member := &entity.TeamMember{
		Name:         input.Name,
		Title:        input.Title,
		Bio:          input.Bio,
		Photo:        photo,
		DisplayOrder: input.DisplayOrder,
	}

	if err := srv.teamRepo.Create(ctx, member); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{photo})

		return nil, errors.Wrap(err, "failed to create team member")
	}

	srv.logger.Info("Team member created", slog.Any("memberID", member.ID))

	return member, nil
}

// Update replaces the editable fields of a staff profile. A replaced photo
// is removed from storage once the update has been persisted.
func (srv *teamService) Update(ctx context.Context, id uuid.UUID, input *usecase.TeamMemberInput) (*entity.TeamMember, error) {
	member, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousPhoto := member.Photo

	photo := input.KeepPhoto
	if input.Photo != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.Photo})
		if err != nil {
			return nil, err
		}
		photo = stored[0]
	}

	member.Name = input.Name
	member.Title = input.Title
	member.Bio = input.Bio
	member.DisplayOrder = input.DisplayOrder
	member.Photo = photo

	if err := srv.teamRepo.Update(ctx, member); err != nil {
		if input.Photo != nil {
			removeImages(ctx, srv.imageStorage, srv.logger, []string{photo})
		}

		return nil, errors.Wrap(err, "failed to update team member")
	}

	if previousPhoto != "" && previousPhoto != member.Photo {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{previousPhoto})
	}

	return member, nil
}

// Delete removes a staff profile and its photo.
func (srv *teamService) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "team member delete failed")
		}

		return errors.Wrap(err, "failed to delete team member")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, []string{member.Photo})

	return nil
}
