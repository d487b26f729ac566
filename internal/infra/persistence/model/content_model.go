package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogPostModel mirrors the 'blog_posts' table.
type BlogPostModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(300);not null"`
	Content    string    `gorm:"type:text;not null"`
	Author     string    `gorm:"type:varchar(100)"`
	Category   string    `gorm:"type:varchar(100);index"`
	CoverImage string    `gorm:"type:varchar(500)"`
	Published  bool      `gorm:"index;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// GalleryAlbumModel mirrors the 'gallery_albums' table.
type GalleryAlbumModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100);index"`
	Images      []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryAlbumModel) TableName() string {
	return "gallery_albums"
}

// TeamMemberModel mirrors the 'team_members' table.
type TeamMemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Title        string    `gorm:"type:varchar(100)"`
	Bio          string    `gorm:"type:text"`
	Photo        string    `gorm:"type:varchar(500)"`
	DisplayOrder int       `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// SocialLinkModel mirrors the 'social_links' table.
type SocialLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Enabled   bool      `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialLinkModel) TableName() string {
	return "social_links"
}
