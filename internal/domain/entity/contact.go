package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus tracks how far an admin has taken a contact request.
type ContactStatus string

const (
	ContactNew       ContactStatus = "new"
	ContactContacted ContactStatus = "contacted"
	ContactRejected  ContactStatus = "rejected"
)

var contactTransitions = transitionTable[ContactStatus]{
	ContactNew: {ContactContacted, ContactRejected},
}

// CanTransitionTo reports whether the contact status may move to the target.
func (s ContactStatus) CanTransitionTo(target ContactStatus) bool {
	return canTransition(contactTransitions, s, target)
}

// IsTerminal reports whether the status exposes no further transitions.
func (s ContactStatus) IsTerminal() bool {
	return isTerminal(contactTransitions, s)
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
