package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is the generic "record does not exist" error returned by repositories.
	ErrNotFound = errors.New("not found")

	// ErrAttendeeNotFound is returned when the referenced attendee does not exist.
	ErrAttendeeNotFound = errors.New("attendee not found")

	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrAlreadyRegistered is returned when a registration for the same
	// (attendee, event) pair already exists. The database unique constraint
	// is the authoritative guard; constraint violations map here.
	ErrAlreadyRegistered = errors.New("already registered for event")

	// ErrOrphanedRegistration is returned when a registration references an
	// event that no longer exists. This indicates data corruption, not user error.
	ErrOrphanedRegistration = errors.New("registration references missing event")

	// ErrInvalidInput is returned when the request is invalid.
	ErrInvalidInput = errors.New("invalid input")
)
