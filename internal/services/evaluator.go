package services

import (
	"time"

	"expopass/internal/domain"
)

// EarlyBuffer is how long before the event window opens a scan is accepted.
// Fixed policy, not configurable per event.
const EarlyBuffer = 30 * time.Minute

// EvaluateAttendance classifies a scan of the given registration against the
// event's time window. It is a pure function: same inputs, same outcome, no
// side effects. Branch order encodes priority: day-granularity checks first,
// then the early buffer, then the end of the window, then prior attendance.
// Within the event day the early-buffer check precedes the already-attended
// check, so a pre-window scan is never reported as already attended.
func EvaluateAttendance(now time.Time, event *domain.Event, reg *domain.Registration) *domain.VerificationOutcome {
	days := domain.DaysBetween(now, event.Date)

	if days < 0 {
		// The whole event day has passed. Attendance context is attached so a
		// UI can still say whether the attendee showed up.
		return &domain.VerificationOutcome{
			Status:     domain.StatusEventEnded,
			Attended:   reg.Attended,
			AttendedAt: reg.AttendedAt,
		}
	}

	if days > 0 {
		return &domain.VerificationOutcome{
			Status:    domain.StatusEventInFuture,
			DaysUntil: days,
		}
	}

	// Scan day and event day coincide: anchor the window to the event's
	// calendar day in the scan's location.
	windowStart := event.StartTime.On(now)
	windowEnd := event.EndTime.On(now)

	if now.Before(windowStart.Add(-EarlyBuffer)) {
		// Strict comparison: the boundary instant (exactly EarlyBuffer before
		// opening) is not early.
		return &domain.VerificationOutcome{
			Status:            domain.StatusTooEarly,
			MinutesUntilStart: ceilMinutes(windowStart.Sub(now)),
		}
	}

	if now.After(windowEnd) {
		// now == windowEnd is still within the window.
		return &domain.VerificationOutcome{
			Status:     domain.StatusEventEnded,
			Attended:   reg.Attended,
			AttendedAt: reg.AttendedAt,
		}
	}

	if reg.Attended {
		return &domain.VerificationOutcome{
			Status:     domain.StatusAlreadyAttended,
			Attended:   true,
			AttendedAt: reg.AttendedAt,
		}
	}

	return &domain.VerificationOutcome{Status: domain.StatusSuccess}
}

// ceilMinutes converts a positive duration to whole minutes, rounding up so
// any fractional minute remaining still displays as a full minute.
func ceilMinutes(d time.Duration) int {
	mins := int(d / time.Minute)
	if d%time.Minute != 0 {
		mins++
	}
	return mins
}
