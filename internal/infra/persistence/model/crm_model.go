package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(30)"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);index;default:'new'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// InquiryModel mirrors the 'inquiries' table. The property snapshot columns
// denormalize the listing at submission time; PropertyID is kept without a
// foreign key constraint so the inquiry survives listing deletion.
type InquiryModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Email               string    `gorm:"type:varchar(255);not null"`
	Phone               string    `gorm:"type:varchar(30)"`
	Message             string    `gorm:"type:text"`
	PropertyID          uuid.UUID `gorm:"type:uuid;index"`
	PropertyName        string    `gorm:"type:varchar(200)"`
	PropertyCity        string    `gorm:"type:varchar(100)"`
	PropertyPricePerGaj float64
	PropertyGaj         float64
	Status              string `gorm:"type:varchar(20);index;default:'new'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}

// FeedbackModel mirrors the 'feedbacks' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	Rating    int       `gorm:"not null"`
	Message   string    `gorm:"type:text;not null"`
	Avatar    string    `gorm:"type:varchar(500)"`
	Status    string    `gorm:"type:varchar(20);index;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
