package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// PropertyInput defines the data required to create or replace a listing.
type PropertyInput struct {
	Name        string
	Description string
	City        string
	Address     string
	Latitude    float64
	Longitude   float64
	PricePerGaj float64
	Gaj         float64
	Category    entity.PropertyCategory
	Featured    bool
	KeepImages  []string // Stored paths already on the listing that remain after an update.
	NewImages   []*ImageUpload
}

// PropertyUsecase defines the interface for property listing operations.
type PropertyUsecase interface {
	List(ctx context.Context, filters repository.PropertyFilters) ([]*entity.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Create(ctx context.Context, input *PropertyInput) (*entity.Property, error)
	Update(ctx context.Context, id uuid.UUID, input *PropertyInput) (*entity.Property, error)

	// UpdateStatus moves a listing along its sale lifecycle. Transitions not
	// allowed by the lifecycle table are rejected with a conflict error.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PropertyStatus) (*entity.Property, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ListSimilar returns up to limit listings near the given one, ranked by
	// geographic distance when coordinates are available and by shared city
	// otherwise.
	ListSimilar(ctx context.Context, id uuid.UUID, limit int) ([]*entity.Property, error)

	// ShareQR renders a PNG QR code pointing at the listing's public page.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
