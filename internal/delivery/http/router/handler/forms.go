package handler

import (
	"encoding/json"
	"mime/multipart"
	"strings"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bytesPerMB = 1 << 20

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid id format")
	}

	return id, nil
}

// isMultipart reports whether the request carries multipart form data.
func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formUploads extracts the uploaded files under field from a multipart
// request, enforcing the per-file size limit. A JSON request yields no
// uploads and no error.
func formUploads(c echo.Context, field string, maxSizeMB int) ([]*usecase.ImageUpload, error) {
	if !isMultipart(c) {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed multipart form")
	}

	files := form.File[field]
	uploads := make([]*usecase.ImageUpload, 0, len(files))
	for _, fileHeader := range files {
		upload, err := openUpload(fileHeader, maxSizeMB)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}

	return uploads, nil
}

// formUpload extracts at most one uploaded file under field.
func formUpload(c echo.Context, field string, maxSizeMB int) (*usecase.ImageUpload, error) {
	uploads, err := formUploads(c, field, maxSizeMB)
	if err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, nil
	}

	return uploads[0], nil
}

func openUpload(fileHeader *multipart.FileHeader, maxSizeMB int) (*usecase.ImageUpload, error) {
	if maxSizeMB > 0 && fileHeader.Size > int64(maxSizeMB)*bytesPerMB {
		return nil, domainerrors.ErrUploadTooLarge.WithDetails(fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUploadFailed, "failed to open uploaded file")
	}

	return &usecase.ImageUpload{
		Filename: fileHeader.Filename,
		Content:  file,
	}, nil
}

// expandList tolerates both wire forms of a string list: repeated form fields
// and a single JSON-encoded array, as multipart clients send them.
func expandList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if strings.HasPrefix(trimmed, "[") {
			var decoded []string
			if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
				out = append(out, decoded...)

				continue
			}
		}
		if value != "" {
			out = append(out, value)
		}
	}

	return out
}
