package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PropertyCategory classifies a listed plot or building.
type PropertyCategory string

const (
	CategoryResidential  PropertyCategory = "residential"
	CategoryCommercial   PropertyCategory = "commercial"
	CategoryAgricultural PropertyCategory = "agricultural"
)

// IsValid checks if the PropertyCategory is a known value.
func (c PropertyCategory) IsValid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryAgricultural:
		return true
	default:
		return false
	}
}

// PropertyStatus is the sale state of a listing.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyReserved  PropertyStatus = "reserved"
	PropertySold      PropertyStatus = "sold"
)

// propertyTransitions: a sold listing stays sold; a reservation can fall
// through back to available or complete into sold.
var propertyTransitions = transitionTable[PropertyStatus]{
	PropertyAvailable: {PropertyReserved, PropertySold},
	PropertyReserved:  {PropertyAvailable, PropertySold},
}

// CanTransitionTo reports whether the listing status may move to the target.
func (s PropertyStatus) CanTransitionTo(target PropertyStatus) bool {
	return canTransition(propertyTransitions, s, target)
}

// IsTerminal reports whether the status exposes no further transitions.
func (s PropertyStatus) IsTerminal() bool {
	return isTerminal(propertyTransitions, s)
}

// Property is a marketed plot or building. Prices follow the local
// convention of a rate per gaj (square yard) times the plot size in gaj.
type Property struct {
	ID          uuid.UUID
	Name        string
	Description string
	City        string
	Address     string
	Latitude    float64
	Longitude   float64
	PricePerGaj float64
	Gaj         float64
	Category    PropertyCategory
	Status      PropertyStatus
	Featured    bool
	Images      []string // Stored image paths, resolved to public URLs on serialization.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalPrice is the derived asking price for the whole plot.
func (p *Property) TotalPrice() float64 {
	return p.PricePerGaj * p.Gaj
}

// Point returns the listing coordinates as an orb point (lon, lat order).
func (p *Property) Point() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// HasLocation reports whether coordinates were captured for the listing.
func (p *Property) HasLocation() bool {
	return p.Latitude != 0 || p.Longitude != 0
}
