package entity

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink is a social media profile shown in the site footer and header.
type SocialLink struct {
	ID        uuid.UUID
	Platform  string // e.g. "facebook", "instagram", "youtube"
	URL       string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
