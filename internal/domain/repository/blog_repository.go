package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogPostNotFound is returned when a blog post is not found.
var ErrBlogPostNotFound = errors.New("blog post not found")

// BlogFilters narrows a blog listing query.
type BlogFilters struct {
	Category      string
	PublishedOnly bool
	Search        string
}

// BlogRepository defines the standard operations for blog post persistence.
type BlogRepository interface {
	List(ctx context.Context, filters BlogFilters) ([]*entity.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}
