package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/response"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SocialHandler holds dependencies for social link handlers.
type SocialHandler struct {
	uc     usecase.SocialUsecase
	mapper *viewMapper
	logger *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler, injected by Fx.
func NewSocialHandler(uc usecase.SocialUsecase, resolver *assets.Resolver, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		uc:     uc,
		mapper: newViewMapper(resolver),
		logger: logger,
	}
}

// List serves both the public footer and the back office. Anonymous callers
// only ever see enabled links.
func (h *SocialHandler) List(c echo.Context) error {
	_, authenticated := middleware.GetAdminID(c)

	links, err := h.uc.List(c.Request().Context(), !authenticated)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.socialLinks(links), "")
}

// Get returns a single social link.
func (h *SocialHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	link, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.socialLink(link), "")
}

type socialLinkRequest struct {
	Platform string `json:"platform" form:"platform" validate:"required"`
	URL      string `json:"url" form:"url" validate:"required,url"`
	Enabled  *bool  `json:"enabled" form:"enabled"`
}

func (r *socialLinkRequest) toInput() *usecase.SocialLinkInput {
	// New links are live unless explicitly disabled.
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}

	return &usecase.SocialLinkInput{
		Platform: r.Platform,
		URL:      r.URL,
		Enabled:  enabled,
	}
}

// Create handles the creation of a new social link.
func (h *SocialHandler) Create(c echo.Context) error {
	var req socialLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social link input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.socialLink(link), "Social link created successfully")
}

// Update handles the replacement of a social link's editable fields.
func (h *SocialHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req socialLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social link input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.socialLink(link), "Social link updated successfully")
}

// Delete removes a social link permanently.
func (h *SocialHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Social link deleted successfully")
}
