// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "io"

// ImageUpload carries one uploaded file from the delivery layer into a use case.
// The delivery layer is responsible for enforcing size limits before handing
// the stream over.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}
