package entity

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a marketing article shown on the public blog pages.
type BlogPost struct {
	ID         uuid.UUID
	Title      string
	Content    string
	Author     string
	Category   string
	CoverImage string // Stored image path, resolved to a public URL on serialization.
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
