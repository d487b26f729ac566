package entity

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus tracks the lifecycle of a property inquiry in the back-office.
type InquiryStatus string

const (
	InquiryNew       InquiryStatus = "new"
	InquiryPending   InquiryStatus = "pending"
	InquiryConfirmed InquiryStatus = "confirmed"
	InquiryRejected  InquiryStatus = "rejected"
)

// inquiryTransitions: confirmed and rejected are terminal for the admin view;
// nothing transitions back to new.
var inquiryTransitions = transitionTable[InquiryStatus]{
	InquiryNew:     {InquiryPending, InquiryConfirmed, InquiryRejected},
	InquiryPending: {InquiryConfirmed, InquiryRejected},
}

// CanTransitionTo reports whether the inquiry status may move to the target.
func (s InquiryStatus) CanTransitionTo(target InquiryStatus) bool {
	return canTransition(inquiryTransitions, s, target)
}

// IsTerminal reports whether the status exposes no further transitions.
func (s InquiryStatus) IsTerminal() bool {
	return isTerminal(inquiryTransitions, s)
}

// PropertySnapshot denormalizes the fields of a listing at submission time,
// so the inquiry stays meaningful even if the listing later changes or is deleted.
type PropertySnapshot struct {
	Name        string
	City        string
	PricePerGaj float64
	Gaj         float64
}

// Inquiry is a purchase inquiry for a specific property, submitted from the
// public property detail page.
type Inquiry struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID uuid.UUID
	Property   *PropertySnapshot // Nil when the referenced listing was never resolved.
	Status     InquiryStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
