package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPropertyHandler(uc usecase.PropertyUsecase) *PropertyHandler {
	return NewPropertyHandler(uc, testResolver(), testConfig(), testLogger())
}

func TestPropertyListForwardsFilters(t *testing.T) {
	var seen repository.PropertyFilters
	uc := &fakePropertyUC{
		listFn: func(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
			seen = filters

			return []*entity.Property{}, nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet,
		"/api/properties?category=residential&status=available&city=Jaipur&featured=true&search=acres", nil)
	rec := invoke(e, req, newPropertyHandler(uc).List, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.CategoryResidential, seen.Category)
	assert.Equal(t, entity.PropertyAvailable, seen.Status)
	assert.Equal(t, "Jaipur", seen.City)
	assert.Equal(t, "acres", seen.Search)
	require.NotNil(t, seen.Featured)
	assert.True(t, *seen.Featured)
}

func TestPropertyListEmptyIsSuccessfulEmptyArray(t *testing.T) {
	uc := &fakePropertyUC{
		listFn: func(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error) {
			return []*entity.Property{}, nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
	rec := invoke(e, req, newPropertyHandler(uc).List, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestPropertyGetResolvesImageURLs(t *testing.T) {
	property := sampleProperty()
	uc := &fakePropertyUC{
		getFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			assert.Equal(t, property.ID, id)

			return property, nil
		},
	}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+property.ID.String(), nil)
	rec := invoke(e, req, newPropertyHandler(uc).Get, map[string]string{"id": property.ID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://api.estate.test/uploads/front.jpg")
	assert.Contains(t, rec.Body.String(), `"totalPrice":540000`)
}

func TestPropertyGetInvalidIDIs400(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/not-a-uuid", nil)
	rec := invoke(e, req, newPropertyHandler(&fakePropertyUC{}).Get, map[string]string{"id": "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestPropertyGetNotFoundIs404(t *testing.T) {
	uc := &fakePropertyUC{
		getFn: func(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
			return nil, domainerrors.ErrNotFound
		},
	}

	e := newTestEcho()
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+id, nil)
	rec := invoke(e, req, newPropertyHandler(uc).Get, map[string]string{"id": id})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func multipartPropertyRequest(t *testing.T, fields map[string]string, imageNames ...string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range imageNames {
		part, err := writer.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/properties", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestPropertyCreateFromMultipart(t *testing.T) {
	var seen *usecase.PropertyInput
	uc := &fakePropertyUC{
		createFn: func(ctx context.Context, input *usecase.PropertyInput) (*entity.Property, error) {
			seen = input
			created := sampleProperty()
			created.Name = input.Name

			return created, nil
		},
	}

	req := multipartPropertyRequest(t, map[string]string{
		"name":        "Sunrise Plots",
		"city":        "Jaipur",
		"category":    "residential",
		"pricePerGaj": "12000",
		"Gaj":         "45",
	}, "one.jpg", "two.jpg")

	e := newTestEcho()
	rec := invoke(e, req, newPropertyHandler(uc).Create, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "Sunrise Plots", seen.Name)
	assert.InDelta(t, 12000, seen.PricePerGaj, 0.001)
	assert.InDelta(t, 45, seen.Gaj, 0.001, "capitalized Gaj field is honored")
	require.Len(t, seen.NewImages, 2)
	assert.Equal(t, "one.jpg", seen.NewImages[0].Filename)
}

func TestPropertyUpdateNormalizesKeptImageURLs(t *testing.T) {
	property := sampleProperty()
	var seen *usecase.PropertyInput
	uc := &fakePropertyUC{
		updateFn: func(ctx context.Context, id uuid.UUID, input *usecase.PropertyInput) (*entity.Property, error) {
			seen = input

			return property, nil
		},
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("name", "Green Acres"))
	require.NoError(t, writer.WriteField("city", "Jaipur"))
	require.NoError(t, writer.WriteField("category", "residential"))
	// Clients echo back resolved URLs, and may JSON-encode the array.
	require.NoError(t, writer.WriteField("keepImages",
		`["https://api.estate.test/uploads/front.jpg","/uploads/side.jpg"]`))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/properties/"+property.ID.String(), &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	e := newTestEcho()
	rec := invoke(e, req, newPropertyHandler(uc).Update, map[string]string{"id": property.ID.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, []string{"/uploads/front.jpg", "/uploads/side.jpg"}, seen.KeepImages)
}

func TestPropertyUpdateStatusConflictSurfacesAs409(t *testing.T) {
	uc := &fakePropertyUC{
		updateStatusFn: func(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) (*entity.Property, error) {
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("sold is terminal")
		},
	}

	e := newTestEcho()
	id := uuid.NewString()
	req := jsonRequest(http.MethodPut, "/api/properties/"+id+"/status", `{"status":"available"}`)
	rec := invoke(e, req, newPropertyHandler(uc).UpdateStatus, map[string]string{"id": id})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_STATUS_TRANSITION")
	assert.Contains(t, rec.Body.String(), "sold is terminal")
}

func TestPropertyShareQRStreamsPNG(t *testing.T) {
	uc := &fakePropertyUC{
		shareQRFn: func(ctx context.Context, id uuid.UUID) ([]byte, error) {
			return []byte{0x89, 'P', 'N', 'G'}, nil
		},
	}

	e := newTestEcho()
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/"+id+"/qrcode", nil)
	rec := invoke(e, req, newPropertyHandler(uc).ShareQR, map[string]string{"id": id})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestPropertyDelete(t *testing.T) {
	deleted := uuid.Nil
	uc := &fakePropertyUC{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = id

			return nil
		},
	}

	e := newTestEcho()
	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/properties/"+id.String(), nil)
	rec := invoke(e, req, newPropertyHandler(uc).Delete, map[string]string{"id": id.String()})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, deleted)
}
