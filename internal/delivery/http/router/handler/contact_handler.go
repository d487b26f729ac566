package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for contact request handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	mapper *viewMapper
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, resolver *assets.Resolver, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		mapper: newViewMapper(resolver),
		logger: logger,
	}
}

type contactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Submit records a contact request from the public form.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.contact(contact), "Contact request submitted")
}

// List returns contact requests matching the query filters.
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.uc.List(c.Request().Context(), repository.ContactFilters{
		Status: entity.ContactStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.contacts(contacts), "")
}

// Get returns a single contact request.
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	contact, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.contact(contact), "")
}

type statusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

// UpdateStatus moves a contact request along its triage lifecycle.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.ContactStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.contact(contact), "Contact status updated")
}

// Delete removes a contact request permanently.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact request deleted")
}
