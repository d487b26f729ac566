package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"estate/config"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PropertyHandler holds dependencies for property listing handlers.
type PropertyHandler struct {
	uc          usecase.PropertyUsecase
	mapper      *viewMapper
	resolver    *assets.Resolver
	maxUploadMB int
	logger      *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler, injected by Fx.
func NewPropertyHandler(uc usecase.PropertyUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		resolver:    resolver,
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

// List returns listings matching the query filters. Absent filters are
// omitted from the repository query, never sent as empty-string predicates.
func (h *PropertyHandler) List(c echo.Context) error {
	filters := repository.PropertyFilters{
		Category: entity.PropertyCategory(c.QueryParam("category")),
		Status:   entity.PropertyStatus(c.QueryParam("status")),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err == nil {
			filters.Featured = &featured
		}
	}

	properties, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.properties(properties), "")
}

// Get returns a single listing.
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	property, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.property(property), "")
}

// ListSimilar returns listings near the given one.
func (h *PropertyHandler) ListSimilar(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	similar, err := h.uc.ListSimilar(c.Request().Context(), id, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.properties(similar), "")
}

// ShareQR streams a PNG QR code pointing at the listing's public page.
func (h *PropertyHandler) ShareQR(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type propertyRequest struct {
	Name        string   `json:"name" form:"name" validate:"required"`
	Description string   `json:"description" form:"description"`
	City        string   `json:"city" form:"city" validate:"required"`
	Address     string   `json:"address" form:"address"`
	Latitude    float64  `json:"latitude" form:"latitude"`
	Longitude   float64  `json:"longitude" form:"longitude"`
	PricePerGaj float64  `json:"pricePerGaj" form:"pricePerGaj"`
	Gaj         float64  `json:"gaj" form:"gaj"`
	Category    string   `json:"category" form:"category" validate:"required"`
	Featured    bool     `json:"featured" form:"featured"`
	KeepImages  []string `json:"keepImages" form:"keepImages"`
}

// toInput converts the request into a use case input. Kept image URLs may
// arrive resolved; they are normalized back to stored paths here.
func (h *PropertyHandler) toInput(c echo.Context, req *propertyRequest) (*usecase.PropertyInput, error) {
	// Tolerate the historical capitalized form field name.
	if req.Gaj == 0 {
		if raw := c.FormValue("Gaj"); raw != "" {
			if gaj, err := strconv.ParseFloat(raw, 64); err == nil {
				req.Gaj = gaj
			}
		}
	}

	uploads, err := formUploads(c, "images", h.maxUploadMB)
	if err != nil {
		return nil, err
	}

	keep := make([]string, 0, len(req.KeepImages))
	for _, ref := range expandList(req.KeepImages) {
		keep = append(keep, h.resolver.StoredPath(ref))
	}

	return &usecase.PropertyInput{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PricePerGaj: req.PricePerGaj,
		Gaj:         req.Gaj,
		Category:    entity.PropertyCategory(req.Category),
		Featured:    req.Featured,
		KeepImages:  keep,
		NewImages:   uploads,
	}, nil
}

// Create handles the creation of a new listing.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.property(property), "Property created successfully")
}

// Update handles the full replacement of a listing's editable fields.
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := h.toInput(c, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	property, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.property(property), "Property updated successfully")
}

type propertyStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

// UpdateStatus moves a listing along its sale lifecycle.
func (h *PropertyHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req propertyStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	property, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.PropertyStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.property(property), "Property status updated")
}

// Delete removes a listing permanently.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Property deleted successfully")
}
