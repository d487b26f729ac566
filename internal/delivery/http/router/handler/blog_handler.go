package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"estate/config"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for blog post handlers.
type BlogHandler struct {
	uc          usecase.BlogUsecase
	mapper      *viewMapper
	resolver    *assets.Resolver
	maxUploadMB int
	logger      *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		resolver:    resolver,
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

// List returns blog posts matching the query filters.
func (h *BlogHandler) List(c echo.Context) error {
	filters := repository.BlogFilters{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err == nil && published {
			filters.PublishedOnly = true
		}
	}

	posts, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.blogPosts(posts), "")
}

// Get returns a single blog post.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.blogPost(post), "")
}

type blogPostRequest struct {
	Title     string `json:"title" form:"title" validate:"required"`
	Content   string `json:"content" form:"content" validate:"required"`
	Author    string `json:"author" form:"author"`
	Category  string `json:"category" form:"category"`
	Published *bool  `json:"published" form:"published"`
	KeepCover string `json:"keepCover" form:"keepCover"`
}

func (h *BlogHandler) toInput(c echo.Context, req *blogPostRequest) (*usecase.BlogPostInput, error) {
	cover, err := formUpload(c, "coverImage", h.maxUploadMB)
	if err != nil {
		return nil, err
	}

	// New posts default to published unless explicitly drafted.
	published := true
	if req.Published != nil {
		published = *req.Published
	}

	return &usecase.BlogPostInput{
		Title:      req.Title,
		Content:    req.Content,
		Author:     req.Author,
		Category:   req.Category,
		Published:  published,
		KeepCover:  h.resolver.StoredPath(req.KeepCover),
		CoverImage: cover,
	}, nil
}

// Create handles the creation of a new blog post.
func (h *BlogHandler) Create(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.blogPost(post), "Blog post created successfully")
}

// Update handles the replacement of a blog post's editable fields.
func (h *BlogHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog post input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.blogPost(post), "Blog post updated successfully")
}

// Delete removes a blog post permanently.
func (h *BlogHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog post deleted successfully")
}
