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

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// List retrieves blog posts matching the filters, newest first.
func (repo *blogRepository) List(ctx context.Context, filters repository.BlogFilters) ([]*entity.BlogPost, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filters.Search != "" {
		pattern := likePattern(filters.Search)
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var models []*model.BlogPostModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	posts := make([]*entity.BlogPost, 0, len(models))
	for _, m := range models {
		posts = append(posts, toBlogPostDomain(m))
	}

	return posts, nil
}

// FindByID retrieves a single blog post by its unique ID.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	m, err := findByID[model.BlogPostModel](ctx, repo.db, id, repository.ErrBlogPostNotFound)
	if err != nil {
		return nil, err
	}

	return toBlogPostDomain(m), nil
}

// Create persists a new blog post.
func (repo *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	m := fromBlogPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required blog post fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	post.ID = m.ID
	post.CreatedAt = m.CreatedAt
	post.UpdatedAt = m.UpdatedAt

	return nil
}

// Update modifies an existing blog post.
func (repo *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	result := repo.db.WithContext(ctx).Model(&model.BlogPostModel{}).
		Where("id = ?", post.ID).
		Select("*").Omit("id", "created_at").
		Updates(fromBlogPostDomain(post))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogPostNotFound
	}

	return nil
}

// Delete removes a blog post permanently.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID[model.BlogPostModel](ctx, repo.db, id, repository.ErrBlogPostNotFound)
}

// toBlogPostDomain converts a GORM BlogPostModel to a domain BlogPost entity.
func toBlogPostDomain(data *model.BlogPostModel) *entity.BlogPost {
	if data == nil {
		return nil
	}

	return &entity.BlogPost{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Author:     data.Author,
		Category:   data.Category,
		CoverImage: data.CoverImage,
		Published:  data.Published,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromBlogPostDomain converts a domain BlogPost entity to a GORM BlogPostModel.
func fromBlogPostDomain(data *entity.BlogPost) *model.BlogPostModel {
	if data == nil {
		return nil
	}

	return &model.BlogPostModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Author:     data.Author,
		Category:   data.Category,
		CoverImage: data.CoverImage,
		Published:  data.Published,
	}
}
