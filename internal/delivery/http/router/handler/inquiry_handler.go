package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InquiryHandler holds dependencies for property inquiry handlers.
type InquiryHandler struct {
	uc     usecase.InquiryUsecase
	mapper *viewMapper
	logger *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler, injected by Fx.
func NewInquiryHandler(uc usecase.InquiryUsecase, resolver *assets.Resolver, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		uc:     uc,
		mapper: newViewMapper(resolver),
		logger: logger,
	}
}

type inquiryRequest struct {
	Name       string `json:"name" form:"name" validate:"required"`
	Email      string `json:"email" form:"email" validate:"required,email"`
	Phone      string `json:"phone" form:"phone"`
	Message    string `json:"message" form:"message"`
	PropertyID string `json:"propertyId" form:"propertyId"`
}

// Submit records a purchase inquiry from the public property page.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req inquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	propertyID := uuid.Nil
	if req.PropertyID != "" {
		parsed, err := uuid.Parse(req.PropertyID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid property id")
		}
		propertyID = parsed
	}

	inquiry, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitInquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: propertyID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.inquiry(inquiry), "Inquiry submitted")
}

// List returns inquiries matching the query filters.
func (h *InquiryHandler) List(c echo.Context) error {
	filters := repository.InquiryFilters{
		Status: entity.InquiryStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("propertyId"); raw != "" {
		propertyID, err := uuid.Parse(raw)
		if err == nil {
			filters.PropertyID = propertyID
		}
	}

	inquiries, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.inquiries(inquiries), "")
}

// Get returns a single inquiry.
func (h *InquiryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	inquiry, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.inquiry(inquiry), "")
}

// UpdateStatus moves an inquiry along its triage lifecycle.
func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
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

	inquiry, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.InquiryStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.inquiry(inquiry), "Inquiry status updated")
}

// Delete removes an inquiry permanently.
func (h *InquiryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Inquiry deleted")
}
