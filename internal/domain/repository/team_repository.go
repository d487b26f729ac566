package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTeamMemberNotFound is returned when a team member is not found.
var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamRepository defines the standard operations for team member persistence.
type TeamRepository interface {
	// List retrieves all team members ordered by their display order.
	List(ctx context.Context) ([]*entity.TeamMember, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	Create(ctx context.Context, member *entity.TeamMember) error
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}
