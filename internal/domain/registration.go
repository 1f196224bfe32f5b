package domain

import (
	"context"
	"time"
)

// Registration represents an attendee's registration for an event together
// with its attendance state. The (AttendeeID, EventID) pair is unique, as is
// Token. Attended transitions false→true exactly once, via
// RegistrationRepository.MarkAttended.
// swagger:model Registration
type Registration struct {
	ID         string     `json:"id"`
	AttendeeID string     `json:"attendee_id"`
	EventID    string     `json:"event_id"`
	Token      string     `json:"token"`
	Attended   bool       `json:"attended"`
	AttendedAt *time.Time `json:"attended_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewRegistration creates a new unattended Registration. ID is typically set by the repository on create.
func NewRegistration(attendeeID, eventID, token string, createdAt, updatedAt time.Time) *Registration {
	return &Registration{
		AttendeeID: attendeeID,
		EventID:    eventID,
		Token:      token,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create persists a new registration. A unique-constraint violation on
	// (attendee_id, event_id) is mapped to ErrAlreadyRegistered.
	Create(ctx context.Context, reg *Registration) error
	GetByToken(ctx context.Context, token string) (*Registration, error)
	GetByAttendeeAndEvent(ctx context.Context, attendeeID, eventID string) (*Registration, error)
	ListByAttendeeID(ctx context.Context, attendeeID string) ([]*Registration, error)
	// MarkAttended atomically sets attended = true and attended_at = at for
	// the registration, guarded by attended = false. It returns false when no
	// row was updated, i.e. a concurrent scan already won the transition.
	MarkAttended(ctx context.Context, id string, at time.Time) (bool, error)
}

// RegistrationWithEvent bundles a registration with its related event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// TokenGenerator produces unique, unguessable attendance tokens.
type TokenGenerator interface {
	Generate(attendeeID, eventID string) (string, error)
}

// RegistrationService defines attendee-facing registration operations.
type RegistrationService interface {
	// Register registers the attendee for the event and dispatches the
	// attendance pass email. notified is false when the registration was
	// created but the email could not be delivered; callers may show the
	// pass inline as a fallback.
	Register(ctx context.Context, attendeeID, eventID string) (reg *Registration, notified bool, err error)
	ListMyRegistrations(ctx context.Context, attendeeID string) ([]*RegistrationWithEvent, error)
}

// CheckInService verifies a scanned attendance token against the event's
// time window and, for a successful scan, marks the registration attended
// at most once.
type CheckInService interface {
	CheckIn(ctx context.Context, token string, now time.Time) (*VerificationOutcome, error)
}
