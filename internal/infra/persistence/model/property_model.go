package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Images are stored as a JSON
// array of server-relative paths.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100);index"`
	Address     string    `gorm:"type:varchar(500)"`
	Latitude    float64
	Longitude   float64
	PricePerGaj float64  `gorm:"not null"`
	Gaj         float64  `gorm:"not null"`
	Category    string   `gorm:"type:varchar(30);index"`
	Status      string   `gorm:"type:varchar(20);index;default:'available'"`
	Featured    bool     `gorm:"index"`
	Images      []string `gorm:"serializer:json;type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
