package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"expopass/internal/domain"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (attendee_id, event_id, token, attended, created_at, updated_at)
		VALUES ($1, $2, $3, false, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, reg.AttendeeID, reg.EventID, reg.Token, reg.CreatedAt, reg.UpdatedAt).
		Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			// Either unique index can fire. A token collision would be an
			// integrity problem, not a duplicate registration.
			if pqErr.Constraint == "registrations_token_key" {
				return fmt.Errorf("token collision on insert: %w", err)
			}
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *registrationRepository) GetByToken(ctx context.Context, token string) (*domain.Registration, error) {
	query := `
		SELECT id, attendee_id, event_id, token, attended, attended_at, created_at, updated_at
		FROM registrations
		WHERE token = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, token))
}

func (r *registrationRepository) GetByAttendeeAndEvent(ctx context.Context, attendeeID, eventID string) (*domain.Registration, error) {
	query := `
		SELECT id, attendee_id, event_id, token, attended, attended_at, created_at, updated_at
		FROM registrations
		WHERE attendee_id = $1 AND event_id = $2
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, attendeeID, eventID))
}

func (r *registrationRepository) ListByAttendeeID(ctx context.Context, attendeeID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, attendee_id, event_id, token, attended, attended_at, created_at, updated_at
		FROM registrations
		WHERE attendee_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, attendeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		var attendedAt sql.NullTime
		if err := rows.Scan(&reg.ID, &reg.AttendeeID, &reg.EventID, &reg.Token, &reg.Attended, &attendedAt, &reg.CreatedAt, &reg.UpdatedAt); err != nil {
			return nil, err
		}
		if attendedAt.Valid {
			reg.AttendedAt = &attendedAt.Time
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}

// MarkAttended is the single conditional write permitted on a registration.
// The attended = false guard makes it a compare-and-set: exactly one caller
// can ever flip a given row, and everyone else sees zero rows affected.
func (r *registrationRepository) MarkAttended(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE registrations
		SET attended = true, attended_at = $2, updated_at = $2
		WHERE id = $1 AND attended = false
	`
	res, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *registrationRepository) scanOne(row *sql.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var attendedAt sql.NullTime
	err := row.Scan(&reg.ID, &reg.AttendeeID, &reg.EventID, &reg.Token, &reg.Attended, &attendedAt, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if attendedAt.Valid {
		reg.AttendedAt = &attendedAt.Time
	}
	return reg, nil
}
