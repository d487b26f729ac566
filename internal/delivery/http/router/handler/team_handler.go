package handler

import (
	"log/slog"
	"net/http"

	"estate/config"
	"estate/internal/delivery/http/response"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeamHandler holds dependencies for staff profile handlers.
type TeamHandler struct {
	uc          usecase.TeamUsecase
	mapper      *viewMapper
	resolver    *assets.Resolver
	maxUploadMB int
	logger      *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler, injected by Fx.
func NewTeamHandler(uc usecase.TeamUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		resolver:    resolver,
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

// List returns all staff profiles in display order.
func (h *TeamHandler) List(c echo.Context) error {
	members, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.teamMembers(members), "")
}

// Get returns a single staff profile.
func (h *TeamHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	member, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.teamMember(member), "")
}

type teamMemberRequest struct {
	Name         string `json:"name" form:"name" validate:"required"`
	Title        string `json:"title" form:"title"`
	Bio          string `json:"bio" form:"bio"`
	DisplayOrder int    `json:"displayOrder" form:"displayOrder"`
	KeepPhoto    string `json:"keepPhoto" form:"keepPhoto"`
}

func (h *TeamHandler) toInput(c echo.Context, req *teamMemberRequest) (*usecase.TeamMemberInput, error) {
	photo, err := formUpload(c, "photo", h.maxUploadMB)
	if err != nil {
		return nil, err
	}

	return &usecase.TeamMemberInput{
		Name:         req.Name,
		Title:        req.Title,
		Bio:          req.Bio,
		DisplayOrder: req.DisplayOrder,
		KeepPhoto:    h.resolver.StoredPath(req.KeepPhoto),
		Photo:        photo,
	}, nil
}

// Create handles the creation of a new staff profile.
func (h *TeamHandler) Create(c echo.Context) error {
	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.teamMember(member), "Team member created successfully")
}

// Update handles the replacement of a staff profile's editable fields.
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req teamMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.teamMember(member), "Team member updated successfully")
}

// Delete removes a staff profile permanently.
func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Team member deleted successfully")
}
