package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackStatus is the moderation state of a testimonial.
type FeedbackStatus string

const (
	FeedbackPending  FeedbackStatus = "pending"
	FeedbackApproved FeedbackStatus = "approved"
	FeedbackDeclined FeedbackStatus = "declined"
)

var feedbackTransitions = transitionTable[FeedbackStatus]{
	FeedbackPending: {FeedbackApproved, FeedbackDeclined},
}

// CanTransitionTo reports whether the moderation status may move to the target.
func (s FeedbackStatus) CanTransitionTo(target FeedbackStatus) bool {
	return canTransition(feedbackTransitions, s, target)
}

// IsTerminal reports whether the status exposes no further transitions.
func (s FeedbackStatus) IsTerminal() bool {
	return isTerminal(feedbackTransitions, s)
}

// Feedback is a visitor testimonial. Only approved feedback appears on the
// public testimonials page.
type Feedback struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Rating    int // 1..5
	Message   string
	Avatar    string // Stored image path, resolved to a public URL on serialization.
	Status    FeedbackStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
