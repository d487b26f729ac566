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

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo     repository.BlogRepository
	imageStorage service.ImageStorage
	logger       *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	BlogRepo     repository.BlogRepository
	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		blogRepo:     params.BlogRepo,
		imageStorage: params.ImageStorage,
		logger:       params.Logger,
	}
}

// List retrieves blog posts matching the filters.
func (srv *blogService) List(ctx context.Context, filters repository.BlogFilters) ([]*entity.BlogPost, error) {
	posts, err := srv.blogRepo.List(ctx, filters)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return posts, nil
}

// Get retrieves a single blog post.
func (srv *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "blog post lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load blog post")
	}

	return post, nil
}

// Create stores the cover image and persists a new blog post.
func (srv *blogService) Create(ctx context.Context, input *usecase.BlogPostInput) (*entity.BlogPost, error) {
	var cover string
	if input.CoverImage != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.CoverImage})
		if err != nil {
			return nil, err
		}
		cover = stored[0]
	}

	post := &entity.BlogPost{
		Title:      input.Title,
		Content:    input.Content,
		Author:     input.Author,
		Category:   input.Category,
		CoverImage: cover,
		Published:  input.Published,
	}

	if err := srv.blogRepo.Create(ctx, post); err != nil {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{cover})

		return nil, errors.Wrap(err, "failed to create blog post")
	}

	srv.logger.Info("Blog post created", slog.Any("postID", post.ID))

	return post, nil
}

// Update replaces the editable fields of a blog post. A replaced cover image
// is removed from storage once the update has been persisted.
func (srv *blogService) Update(ctx context.Context, id uuid.UUID, input *usecase.BlogPostInput) (*entity.BlogPost, error) {
	post, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousCover := post.CoverImage

	cover := input.KeepCover
	if input.CoverImage != nil {
		stored, err := saveImageUploads(ctx, srv.imageStorage, []*usecase.ImageUpload{input.CoverImage})
		if err != nil {
			return nil, err
		}
		cover = stored[0]
	}

	post.Title = input.Title
	post.Content = input.Content
	post.Author = input.Author
	post.Category = input.Category
	post.Published = input.Published
	post.CoverImage = cover

	if err := srv.blogRepo.Update(ctx, post); err != nil {
		if input.CoverImage != nil {
			removeImages(ctx, srv.imageStorage, srv.logger, []string{cover})
		}

		return nil, errors.Wrap(err, "failed to update blog post")
	}

	if previousCover != "" && previousCover != post.CoverImage {
		removeImages(ctx, srv.imageStorage, srv.logger, []string{previousCover})
	}

	return post, nil
}

// Delete removes a blog post and its cover image.
func (srv *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	post, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlogPostNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "blog post delete failed")
		}

		return errors.Wrap(err, "failed to delete blog post")
	}

	removeImages(ctx, srv.imageStorage, srv.logger, []string{post.CoverImage})

	return nil
}
