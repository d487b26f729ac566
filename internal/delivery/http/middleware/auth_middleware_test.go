package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenService struct {
	validateFn func(token string) (*service.Claims, error)
}

func (f *fakeTokenService) GenerateToken(adminID uuid.UUID, role string) (string, error) {
	return "token-" + adminID.String(), nil
}

func (f *fakeTokenService) ValidateToken(token string) (*service.Claims, error) {
	return f.validateFn(token)
}

func (f *fakeTokenService) AccessTokenDuration() time.Duration {
	return time.Hour
}

func validTokenService(adminID uuid.UUID, role string) *fakeTokenService {
	return &fakeTokenService{
		validateFn: func(token string) (*service.Claims, error) {
			if token != "good-token" {
				return nil, errors.New("token is malformed")
			}

			return &service.Claims{AdminID: adminID, Role: role}, nil
		},
	}
}

func runMiddleware(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inquiries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var reached echo.Context
	err := mw(func(c echo.Context) error {
		reached = c

		return c.NoContent(http.StatusOK)
	})(c)

	return rec, reached, err
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	adminID := uuid.New()
	mw := NewAuthMiddleware(validTokenService(adminID, "admin"))

	rec, reached, err := runMiddleware(mw.Authenticate, "Bearer good-token")
	require.NoError(t, err)
	require.NotNil(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetAdminID(reached)
	require.True(t, ok)
	assert.Equal(t, adminID, gotID)
	assert.Equal(t, "admin", reached.Get(ContextRole))
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(validTokenService(uuid.New(), "admin"))

	rec, reached, err := runMiddleware(mw.Authenticate, "")
	require.NoError(t, err)
	assert.Nil(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthenticateRejectsNonBearerAndBadToken(t *testing.T) {
	mw := NewAuthMiddleware(validTokenService(uuid.New(), "admin"))

	for _, header := range []string{"Basic abc", "Bearer bad-token"} {
		rec, reached, err := runMiddleware(mw.Authenticate, header)
		require.NoError(t, err)
		assert.Nil(t, reached, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthenticateOptionalPassesAnonymous(t *testing.T) {
	mw := NewAuthMiddleware(validTokenService(uuid.New(), "admin"))

	for _, header := range []string{"", "Bearer bad-token", "Basic abc"} {
		rec, reached, err := runMiddleware(mw.AuthenticateOptional, header)
		require.NoError(t, err)
		require.NotNil(t, reached, "header %q", header)
		assert.Equal(t, http.StatusOK, rec.Code)

		_, ok := GetAdminID(reached)
		assert.False(t, ok, "no identity for header %q", header)
	}
}

func TestAuthenticateOptionalSetsIdentityWhenValid(t *testing.T) {
	adminID := uuid.New()
	mw := NewAuthMiddleware(validTokenService(adminID, "editor"))

	_, reached, err := runMiddleware(mw.AuthenticateOptional, "Bearer good-token")
	require.NoError(t, err)
	require.NotNil(t, reached)

	gotID, ok := GetAdminID(reached)
	require.True(t, ok)
	assert.Equal(t, adminID, gotID)
}

func TestRequireRole(t *testing.T) {
	mw := NewAuthMiddleware(validTokenService(uuid.New(), "admin"))

	e := echo.New()
	run := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/register", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set(ContextRole, role)
		}

		handler := mw.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		return rec
	}

	assert.Equal(t, http.StatusOK, run("admin").Code)
	assert.Equal(t, http.StatusForbidden, run("editor").Code)
	assert.Equal(t, http.StatusForbidden, run("").Code)
}
