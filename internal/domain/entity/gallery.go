package entity

import (
	"time"

	"github.com/google/uuid"
)

// GalleryAlbum groups site/project photos shown on the public gallery page.
type GalleryAlbum struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    string
	Images      []string // Stored image paths, resolved to public URLs on serialization.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
