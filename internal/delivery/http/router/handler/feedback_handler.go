package handler

import (
	"log/slog"
	"net/http"

	"estate/config"
	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for testimonial handlers.
type FeedbackHandler struct {
	uc          usecase.FeedbackUsecase
	mapper      *viewMapper
	maxUploadMB int
	logger      *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

type feedbackRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"omitempty,email"`
	Rating  int    `json:"rating" form:"rating" validate:"required"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Submit records a visitor testimonial, pending moderation.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	avatar, err := formUpload(c, "avatar", h.maxUploadMB)
	if err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitFeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Message: req.Message,
		Avatar:  avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.feedback(feedback), "Feedback submitted for review")
}

// List serves both the public testimonial wall and the moderation queue.
// Anonymous callers only ever see approved entries.
func (h *FeedbackHandler) List(c echo.Context) error {
	if _, authenticated := middleware.GetAdminID(c); !authenticated {
		feedbacks, err := h.uc.ListApproved(c.Request().Context())
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, h.mapper.feedbacks(feedbacks), "")
	}

	feedbacks, err := h.uc.List(c.Request().Context(), repository.FeedbackFilters{
		Status: entity.FeedbackStatus(c.QueryParam("status")),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.feedbacks(feedbacks), "")
}

// Get returns a single testimonial.
func (h *FeedbackHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	feedback, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.feedback(feedback), "")
}

// UpdateStatus approves or rejects a pending testimonial.
func (h *FeedbackHandler) UpdateStatus(c echo.Context) error {
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

	feedback, err := h.uc.UpdateStatus(c.Request().Context(), id, entity.FeedbackStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.feedback(feedback), "Feedback status updated")
}

// Delete removes a testimonial permanently.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Feedback deleted")
}
