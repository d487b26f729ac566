package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// BlogPostInput defines the data required to create or replace a blog post.
type BlogPostInput struct {
	Title      string
	Content    string
	Author     string
	Category   string
	Published  bool
	KeepCover  string // Stored cover path that remains after an update.
	CoverImage *ImageUpload
}

// BlogUsecase defines the interface for blog post operations.
type BlogUsecase interface {
	List(ctx context.Context, filters repository.BlogFilters) ([]*entity.BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	Create(ctx context.Context, input *BlogPostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, input *BlogPostInput) (*entity.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
