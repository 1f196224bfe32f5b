package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"expopass/internal/domain"
)

type checkInService struct {
	logger    *slog.Logger
	regRepo   domain.RegistrationRepository
	eventRepo domain.EventRepository
	scanRepo  domain.ScanRepository
}

// NewCheckInService creates a CheckInService with the given repositories.
// scanRepo may be nil to disable the scan audit log.
func NewCheckInService(
	logger *slog.Logger,
	regRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	scanRepo domain.ScanRepository,
) domain.CheckInService {
	return &checkInService{
		logger:    logger,
		regRepo:   regRepo,
		eventRepo: eventRepo,
		scanRepo:  scanRepo,
	}
}

func (s *checkInService) CheckIn(ctx context.Context, token string, now time.Time) (*domain.VerificationOutcome, error) {
	reg, err := s.regRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// An unknown token is an expected, user-facing condition, not a failure.
			outcome := &domain.VerificationOutcome{Status: domain.StatusInvalidToken}
			s.recordScan(ctx, "", token, outcome.Status, now)
			return outcome, nil
		}
		return nil, fmt.Errorf("get registration by token: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("registration %s: %w", reg.ID, domain.ErrOrphanedRegistration)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	outcome := EvaluateAttendance(now, event, reg)
	if outcome.Status == domain.StatusSuccess {
		applied, err := s.regRepo.MarkAttended(ctx, reg.ID, now)
		if err != nil {
			return nil, fmt.Errorf("mark attended: %w", err)
		}
		if applied {
			outcome.Attended = true
			at := now
			outcome.AttendedAt = &at
		} else {
			// A concurrent scan won the race. Re-read and re-evaluate: the
			// registration is now attended, so the outcome deterministically
			// becomes AlreadyAttended with the winner's timestamp.
			reg, err = s.regRepo.GetByToken(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("reload registration after lost race: %w", err)
			}
			outcome = EvaluateAttendance(now, event, reg)
		}
	}

	s.recordScan(ctx, reg.ID, token, outcome.Status, now)
	return outcome, nil
}

// recordScan appends a best-effort audit entry; failures are logged, never surfaced.
func (s *checkInService) recordScan(ctx context.Context, registrationID, token string, status domain.VerificationStatus, at time.Time) {
	if s.scanRepo == nil {
		return
	}
	rec := &domain.ScanRecord{
		ID:             uuid.New().String(),
		RegistrationID: registrationID,
		Token:          token,
		Status:         status,
		ScannedAt:      at,
	}
	if err := s.scanRepo.Create(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "scan audit write failed", "registration_id", registrationID, "status", status, "err", err)
	}
}
