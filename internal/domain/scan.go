package domain

import (
	"context"
	"time"
)

// ScanRecord is an audit entry for a single check-in attempt, including
// scans that resolved to an invalid token (RegistrationID empty).
type ScanRecord struct {
	ID             string             `json:"id"`
	RegistrationID string             `json:"registration_id,omitempty"`
	Token          string             `json:"token"`
	Status         VerificationStatus `json:"status"`
	ScannedAt      time.Time          `json:"scanned_at"`
}

// ScanRepository persists check-in attempt audit records.
type ScanRepository interface {
	Create(ctx context.Context, rec *ScanRecord) error
}
