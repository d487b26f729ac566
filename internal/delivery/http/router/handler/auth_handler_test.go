package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/internal/delivery/http/middleware"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, testResolver(), testConfig(), testLogger())
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	admin := sampleAdmin()
	uc := &fakeAuthUC{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			assert.Equal(t, "priya@estate.test", input.Email)

			return &usecase.LoginOutput{AccessToken: "jwt-abc", Admin: admin}, nil
		},
	}

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/api/admin/login",
		`{"email":"priya@estate.test","password":"correct-horse"}`)
	rec := invoke(e, req, newAuthHandler(uc).Login, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			User  struct {
				Email   string `json:"email"`
				IsAdmin bool   `json:"isAdmin"`
				Avatar  string `json:"avatar"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "jwt-abc", body.Data.Token)
	assert.Equal(t, "priya@estate.test", body.Data.User.Email)
	assert.True(t, body.Data.User.IsAdmin)
	assert.Equal(t, "https://api.estate.test/uploads/priya.png", body.Data.User.Avatar)
}

func TestLoginRejectsBadCredentialsWith401(t *testing.T) {
	uc := &fakeAuthUC{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/api/admin/login",
		`{"email":"priya@estate.test","password":"wrong"}`)
	rec := invoke(e, req, newAuthHandler(uc).Login, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestLoginValidatesInput(t *testing.T) {
	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/api/admin/login", `{"email":"not-an-email"}`)
	rec := invoke(e, req, newAuthHandler(&fakeAuthUC{}).Login, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRegisterCreatesAccount(t *testing.T) {
	uc := &fakeAuthUC{
		registerFn: func(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error) {
			assert.Equal(t, entity.RoleEditor, input.Role)

			return &entity.Admin{ID: uuid.New(), Name: input.Name, Email: input.Email, Role: input.Role}, nil
		},
	}

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/api/admin/register",
		`{"name":"Arun","email":"arun@estate.test","password":"longenough","role":"editor"}`)
	rec := invoke(e, req, newAuthHandler(uc).Register, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "arun@estate.test")
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/api/admin/register",
		`{"name":"Arun","email":"arun@estate.test","password":"short"}`)
	rec := invoke(e, req, newAuthHandler(&fakeAuthUC{}).Register, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileRequiresAuthContext(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/profile", nil)
	rec := invoke(e, req, newAuthHandler(&fakeAuthUC{}).GetProfile, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfileRejectsEmailChange(t *testing.T) {
	admin := sampleAdmin()
	uc := &fakeAuthUC{
		getProfileFn: func(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
			return admin, nil
		},
		updateProfileFn: func(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Admin, error) {
			t.Fatal("update must not be reached when the email changes")

			return nil, nil
		},
	}

	e := newTestEcho()
	req := jsonRequest(http.MethodPut, "/api/admin/profile",
		`{"name":"Priya S","email":"other@estate.test"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAdminID, admin.ID)

	if err := newAuthHandler(uc).UpdateProfile(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_IMMUTABLE")
}

func TestUpdateProfileAllowsSameEmailAndAppliesChanges(t *testing.T) {
	admin := sampleAdmin()
	uc := &fakeAuthUC{
		getProfileFn: func(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
			return admin, nil
		},
		updateProfileFn: func(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Admin, error) {
			assert.Equal(t, admin.ID, adminID)
			assert.Equal(t, "Priya S", input.Name)
			updated := *admin
			updated.Name = input.Name

			return &updated, nil
		},
	}

	e := newTestEcho()
	req := jsonRequest(http.MethodPut, "/api/admin/profile",
		`{"name":"Priya S","email":"PRIYA@estate.test"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextAdminID, admin.ID)

	if err := newAuthHandler(uc).UpdateProfile(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Priya S")
	assert.Contains(t, rec.Body.String(), "priya@estate.test", "email stays untouched")
}
