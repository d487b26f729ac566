package client

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies an API failure for callers that branch on the class
// of error rather than the exact status code.
type ErrorKind string

const (
	// KindNetwork covers transport failures: the request never produced a response.
	KindNetwork ErrorKind = "network"

	// KindServer covers 5xx responses and anything otherwise unclassified.
	KindServer ErrorKind = "server"

	// KindUnauthorized covers 401 responses.
	KindUnauthorized ErrorKind = "unauthorized"

	// KindValidation covers rejected input: 400, 409 and 422 responses.
	KindValidation ErrorKind = "validation"

	// KindNotFound covers 404 responses.
	KindNotFound ErrorKind = "notfound"
)

// APIError is the normalized form of every failure returned by the client.
// It is always returned as an error value, never panicked.
type APIError struct {
	Kind    ErrorKind
	Status  int    // HTTP status, 0 for network failures
	Code    string // business error code from the response envelope
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("api: %s (%d %s): %s", e.Kind, e.Status, e.Code, e.Message)
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)

	return ok && apiErr.Kind == KindNotFound
}

// IsUnauthorized reports whether err is an APIError for a rejected credential.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)

	return ok && apiErr.Kind == KindUnauthorized
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadRequest,
		status == http.StatusConflict,
		status == http.StatusUnprocessableEntity:
		return KindValidation
	default:
		return KindServer
	}
}
