package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// teamRepository implements the repository.TeamRepository interface using GORM.
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository is the constructor for teamRepository.
func NewTeamRepository(db *gorm.DB) repository.TeamRepository {
	return &teamRepository{db: db}
}

// List retrieves all team members ordered by their display order.
func (repo *teamRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	var models []*model.TeamMemberModel
	if err := repo.db.WithContext(ctx).Order("display_order ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	members := make([]*entity.TeamMember, 0, len(models))
	for _, m := range models {
		members = append(members, toTeamMemberDomain(m))
	}

	return members, nil
}

// FindByID retrieves a single team member by their unique ID.
func (repo *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	m, err := findByID[model.TeamMemberModel](ctx, repo.db, id, repository.ErrTeamMemberNotFound)
	if err != nil {
		return nil, err
	}

	return toTeamMemberDomain(m), nil
}

// Create persists a new team member.
func (repo *teamRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	m := fromTeamMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required team member fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create team member")
	}

	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing team member.
func (repo *teamRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	result := repo.db.WithContext(ctx).Model(&model.TeamMemberModel{}).
		Where("id = ?", member.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromTeamMemberDomain(member))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update team member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamMemberNotFound
	}

	return nil
}

// Delete removes a team member permanently.
func (repo *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.TeamMemberModel](ctx, repo.db, id, repository.ErrTeamMemberNotFound)
}

// toTeamMemberDomain converts a GORM TeamMemberModel to a domain TeamMember entity.
func toTeamMemberDomain(data *model.TeamMemberModel) *entity.TeamMember {
	if data == nil {
		return nil
	}

	return &entity.TeamMember{
		ID:           data.ID,
		Name:         data.Name,
		Title:        data.Title,
		Bio:          data.Bio,
		Photo:        data.Photo,
		DisplayOrder: data.DisplayOrder,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTeamMemberDomain converts a domain TeamMember entity to a GORM TeamMemberModel.
func fromTeamMemberDomain(data *entity.TeamMember) *model.TeamMemberModel {
	if data == nil {
		return nil
	}

	return &model.TeamMemberModel{
		ID:           data.ID,
		Name:         data.Name,
		Title:        data.Title,
		Bio:          data.Bio,
		Photo:        data.Photo,
		DisplayOrder: data.DisplayOrder,
	}
}
