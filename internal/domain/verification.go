package domain

import "time"

// VerificationStatus classifies a scan of an attendance token. Temporal
// statuses are not errors; they share the same shape as Success so callers
// cannot mistake "too early" for a retryable failure.
type VerificationStatus string

const (
	StatusInvalidToken    VerificationStatus = "invalid_token"
	StatusEventInFuture   VerificationStatus = "event_in_future"
	StatusEventEnded      VerificationStatus = "event_ended"
	StatusTooEarly        VerificationStatus = "too_early"
	StatusAlreadyAttended VerificationStatus = "already_attended"
	StatusSuccess         VerificationStatus = "success"
)

// VerificationOutcome is the transient result of evaluating a scan. Exactly
// one status applies; the context fields are populated per status:
// DaysUntil for event_in_future, MinutesUntilStart for too_early, and
// Attended/AttendedAt for event_ended, already_attended, and success.
// swagger:model VerificationOutcome
type VerificationOutcome struct {
	Status            VerificationStatus `json:"status"`
	DaysUntil         int                `json:"days_until,omitempty"`
	MinutesUntilStart int                `json:"minutes_until_start,omitempty"`
	Attended          bool               `json:"attended"`
	AttendedAt        *time.Time         `json:"attended_at,omitempty"`
}
