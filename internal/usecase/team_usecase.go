package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// TeamMemberInput defines the data required to create or replace a staff profile.
type TeamMemberInput struct {
	Name         string
	Title        string
	Bio          string
	DisplayOrder int
	KeepPhoto    string // Stored photo path that remains after an update.
	Photo        *ImageUpload
}

// TeamUsecase defines the interface for staff profile operations.
type TeamUsecase interface {
	List(ctx context.Context) ([]*entity.TeamMember, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	Create(ctx context.Context, input *TeamMemberInput) (*entity.TeamMember, error)
	Update(ctx context.Context, id uuid.UUID, input *TeamMemberInput) (*entity.TeamMember, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
