package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a staff profile shown on the public about page.
type TeamMember struct {
	ID           uuid.UUID
	Name         string
	Title        string
	Bio          string
	Photo        string // Stored image path, resolved to a public URL on serialization.
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
