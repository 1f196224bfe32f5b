package domain

import "context"

// Attendee represents a registered user of the surrounding application.
// The user-management subsystem owns this entity; this service only reads it.
// swagger:model Attendee
type Attendee struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AttendeeRepository defines read-only access to attendees.
type AttendeeRepository interface {
	GetByID(ctx context.Context, id string) (*Attendee, error)
}
