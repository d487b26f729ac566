package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"estate/config"
	"estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/validator"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/usecase"
	"estate/pkg/assets"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Uploads = &config.UploadsConfig{Dir: "uploads", MaxSizeMB: 10}
	cfg.Assets = &config.AssetsConfig{PublicBaseURL: "https://api.estate.test"}

	return cfg
}

func testResolver() *assets.Resolver {
	return assets.NewResolver("https://api.estate.test")
}

// newTestEcho builds an echo instance wired the way the server wires it:
// struct-tag validation and the domain error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	errorMW := middleware.NewErrorMiddleware(testLogger())
	e.HTTPErrorHandler = errorMW.HandleHTTPError

	return e
}

// invoke runs a handler through the echo error pipeline and returns the
// recorded response.
func invoke(e *echo.Echo, req *http.Request, h echo.HandlerFunc, pathParams map[string]string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// --- usecase fakes, function-field style ---

type fakeAuthUC struct {
	loginFn         func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	registerFn      func(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error)
	getProfileFn    func(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error)
	updateProfileFn func(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Admin, error)
}

func (f *fakeAuthUC) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.loginFn(ctx, input)
}

func (f *fakeAuthUC) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*entity.Admin, error) {
	return f.registerFn(ctx, input)
}

func (f *fakeAuthUC) GetProfile(ctx context.Context, adminID uuid.UUID) (*entity.Admin, error) {
	return f.getProfileFn(ctx, adminID)
}

func (f *fakeAuthUC) UpdateProfile(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Admin, error) {
	return f.updateProfileFn(ctx, adminID, input)
}

type fakePropertyUC struct {
	listFn         func(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	createFn       func(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error)
	updateFn       func(ctx context.Context, id uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) (*entity.Property, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	listSimilarFn  func(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Property, error)
	shareQRFn      func(ctx context.Context, id uuid.UUID) ([]byte, error)
}

func (f *fakePropertyUC) List(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
	return f.listFn(ctx, filters)
}

func (f *fakePropertyUC) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return f.getFn(ctx, id)
}

func (f *fakePropertyUC) Create(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
	return f.createFn(ctx, input)
}

func (f *fakePropertyUC) Update(ctx context.Context, id uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakePropertyUC) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) (*entity.Property, error) {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakePropertyUC) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func (f *fakePropertyUC) ListSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Property, error) {
	return f.listSimilarFn(ctx, id, limit)
}

func (f *fakePropertyUC) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return f.shareQRFn(ctx, id)
}

type fakeFeedbackUC struct {
	submitFn       func(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error)
	listApprovedFn func(ctx context.Context) ([]*entity.Feedback, error)
	listFn         func(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error)
	getFn          func(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeFeedbackUC) Submit(ctx context.Context, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	return f.submitFn(ctx, input)
}

func (f *fakeFeedbackUC) ListApproved(ctx context.Context) ([]*entity.Feedback, error) {
	return f.listApprovedFn(ctx)
}

func (f *fakeFeedbackUC) List(ctx context.Context, filters repository.FeedbackFilters) ([]*entity.Feedback, error) {
	return f.listFn(ctx, filters)
}

func (f *fakeFeedbackUC) Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	return f.getFn(ctx, id)
}

func (f *fakeFeedbackUC) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FeedbackStatus) (*entity.Feedback, error) {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeFeedbackUC) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

type fakeSocialUC struct {
	listFn   func(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error)
	createFn func(ctx context.Context, input *usecase.SocialLinkInput) (*entity.SocialLink, error)
	updateFn func(ctx context.Context, id uuid.UUID, input *usecase.SocialLinkInput) (*entity.SocialLink, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeSocialUC) List(ctx context.Context, enabledOnly bool) ([]*entity.SocialLink, error) {
	return f.listFn(ctx, enabledOnly)
}

func (f *fakeSocialUC) Get(ctx context.Context, id uuid.UUID) (*entity.SocialLink, error) {
	return f.getFn(ctx, id)
}

func (f *fakeSocialUC) Create(ctx context.Context, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	return f.createFn(ctx, input)
}

func (f *fakeSocialUC) Update(ctx context.Context, id uuid.UUID, input *usecase.SocialLinkInput) (*entity.SocialLink, error) {
	return f.updateFn(ctx, id, input)
}

func (f *fakeSocialUC) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

// --- shared fixtures ---

func sampleAdmin() *entity.Admin {
	return &entity.Admin{
		ID:        uuid.New(),
		Name:      "Priya",
		Email:     "priya@estate.test",
		Role:      entity.RoleAdmin,
		Avatar:    "/uploads/priya.png",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func sampleProperty() *entity.Property {
	return &entity.Property{
		ID:          uuid.New(),
		Name:        "Green Acres",
		City:        "Jaipur",
		PricePerGaj: 12000,
		Gaj:         45,
		Category:    entity.CategoryResidential,
		Status:      entity.PropertyAvailable,
		Images:      []string{"/uploads/front.jpg"},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

var errBoom = domainerrors.ErrInternalError
