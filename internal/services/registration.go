package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expopass/internal/domain"
)

type registrationService struct {
	logger         *slog.Logger
	attendeeRepo   domain.AttendeeRepository
	eventRepo      domain.EventRepository
	regRepo        domain.RegistrationRepository
	tokenGenerator domain.TokenGenerator
	dispatcher     domain.NotificationDispatcher
}

// NewRegistrationService creates a RegistrationService with the given
// repositories, token generator, and notification dispatcher.
func NewRegistrationService(
	logger *slog.Logger,
	attendeeRepo domain.AttendeeRepository,
	eventRepo domain.EventRepository,
	regRepo domain.RegistrationRepository,
	tokenGenerator domain.TokenGenerator,
	dispatcher domain.NotificationDispatcher,
) domain.RegistrationService {
	return &registrationService{
		logger:         logger,
		attendeeRepo:   attendeeRepo,
		eventRepo:      eventRepo,
		regRepo:        regRepo,
		tokenGenerator: tokenGenerator,
		dispatcher:     dispatcher,
	}
}

func (s *registrationService) Register(ctx context.Context, attendeeID, eventID string) (*domain.Registration, bool, error) {
	attendee, err := s.attendeeRepo.GetByID(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrAttendeeNotFound
		}
		return nil, false, fmt.Errorf("get attendee: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrEventNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	// Early duplicate check. This read-then-create is racy; the unique
	// constraint on (attendee_id, event_id) is the authoritative guard and
	// Create maps its violation to ErrAlreadyRegistered.
	if _, err := s.regRepo.GetByAttendeeAndEvent(ctx, attendeeID, eventID); err == nil {
		return nil, false, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get registration: %w", err)
	}

	token, err := s.tokenGenerator.Generate(attendeeID, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("generate token: %w", err)
	}

	now := time.Now()
	reg := domain.NewRegistration(attendeeID, eventID, token, now, now)
	if err := s.regRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, false, domain.ErrAlreadyRegistered
		}
		return nil, false, fmt.Errorf("create registration: %w", err)
	}

	// The registration is the source of truth; the email is a best-effort
	// convenience. Dispatch failure is reported via notified, not rolled back.
	notified := true
	if err := s.dispatcher.SendAttendancePass(ctx, &domain.AttendancePassEmailData{
		Email:         attendee.Email,
		AttendeeName:  attendee.Name,
		EventName:     event.Name,
		EventLocation: event.Location,
		EventDate:     event.Date.Format("Monday, 2 January 2006"),
		EventWindow:   fmt.Sprintf("%s – %s", event.StartTime, event.EndTime),
		Token:         token,
	}); err != nil {
		notified = false
		s.logger.WarnContext(ctx, "attendance pass dispatch failed",
			"registration_id", reg.ID, "attendee_id", attendeeID, "event_id", eventID, "err", err)
	}

	return reg, notified, nil
}

func (s *registrationService) ListMyRegistrations(ctx context.Context, attendeeID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.regRepo.ListByAttendeeID(ctx, attendeeID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	eventsByID := make(map[string]*domain.Event)
	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, ok := eventsByID[reg.EventID]
		if !ok {
			ev, err = s.eventRepo.GetByID(ctx, reg.EventID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					// Event deleted but registration remains; skip the entry.
					continue
				}
				return nil, fmt.Errorf("get event for registration: %w", err)
			}
			eventsByID[reg.EventID] = ev
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}
