package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"estate/config"
	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/response"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication and account handlers.
type AuthHandler struct {
	uc          usecase.AuthUsecase
	mapper      *viewMapper
	maxUploadMB int
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, resolver *assets.Resolver, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:          uc,
		mapper:      newViewMapper(resolver),
		maxUploadMB: cfg.Uploads.MaxSizeMB,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login handles the admin login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"token": output.AccessToken,
		"user":  h.mapper.admin(output.Admin),
	}, "Login successful")
}

type registerRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role"`
}

// Register handles the creation of a new back-office account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	admin, err := h.uc.RegisterAdmin(c.Request().Context(), &usecase.RegisterAdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.mapper.admin(admin), "Admin registered successfully")
}

// GetProfile returns the caller's own account.
func (h *AuthHandler) GetProfile(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication context")
	}

	admin, err := h.uc.GetProfile(c.Request().Context(), adminID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.admin(admin), "")
}

type updateProfileRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateProfile applies the editable fields of the caller's own account.
// An attempt to change the login email is rejected outright rather than
// silently ignored.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Missing authentication context")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if req.Email != "" {
		current, err := h.uc.GetProfile(c.Request().Context(), adminID)
		if err != nil {
			return errors.WithStack(err)
		}
		if !strings.EqualFold(req.Email, current.Email) {
			return errors.WithStack(domainerrors.ErrEmailImmutable)
		}
	}

	avatar, err := formUpload(c, "avatar", h.maxUploadMB)
	if err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.UpdateProfile(c.Request().Context(), adminID, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Password: req.Password,
		Avatar:   avatar,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.mapper.admin(admin), "Profile updated successfully")
}
