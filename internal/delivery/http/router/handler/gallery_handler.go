package handler

import (
	"log/slog"
	"net/http"

	"estate/config"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GalleryHandler holds dependencies for gallery album handlers.
type GalleryHandler struct {
	uc          usecase.GalleryUsecase
	mapper      *viewMapper
	resolver    *assets.Resolver
	maxUploadMB int
	logger      *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(uc usecase.GalleryUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		resolver:    resolver,
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

// List returns gallery albums matching the query filters.
func (h *GalleryHandler) List(c echo.Context) error {
	albums, err := h.uc.List(c.Request().Context(), repository.GalleryFilters{
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.albums(albums), "")
}

// Get returns a single gallery album.
func (h *GalleryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	album, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.album(album), "")
}

type galleryAlbumRequest struct {
	Title       string   `json:"title" form:"title" validate:"required"`
	Description string   `json:"description" form:"description"`
	Category    string   `json:"category" form:"category"`
	KeepImages  []string `json:"keepImages" form:"keepImages"`
}

func (h *GalleryHandler) toInput(c echo.Context, req *galleryAlbumRequest) (*usecase.GalleryAlbumInput, error) {
	uploads, err := formUploads(c, "images", h.maxUploadMB)
	if err != nil {
		return nil, err
	}

	keep := make([]string, 0, len(req.KeepImages))
	for _, ref := range expandList(req.KeepImages) {
		keep = append(keep, h.resolver.StoredPath(ref))
	}

	return &usecase.GalleryAlbumInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		KeepImages:  keep,
		NewImages:   uploads,
	}, nil
}

// Create handles the creation of a new gallery album.
func (h *GalleryHandler) Create(c echo.Context) error {
	var req galleryAlbumRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery album input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	album, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.album(album), "Gallery album created successfully")
}

// Update handles the replacement of an album's editable fields.
func (h *GalleryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req galleryAlbumRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery album input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	album, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.album(album), "Gallery album updated successfully")
}

// Delete removes a gallery album permanently.
func (h *GalleryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Gallery album deleted successfully")
}
