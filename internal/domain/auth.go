package domain

import "time"

// TokenIssuer issues bearer tokens (e.g. JWT) for an authenticated attendee.
type TokenIssuer interface {
	Issue(attendeeID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the authenticated attendee ID.
type TokenVerifier interface {
	Verify(token string) (attendeeID string, err error)
}

// ScannerKeyVerifier checks the shared API key presented by check-in scanner devices.
type ScannerKeyVerifier interface {
	VerifyKey(key string) error
}
