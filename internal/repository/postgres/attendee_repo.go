package postgres

import (
	"context"
	"database/sql"
	"errors"

	"expopass/internal/domain"
)

// attendeeRepository reads attendees from the user-management subsystem's
// table. This service never writes to it.
type attendeeRepository struct {
	DB *sql.DB
}

func NewAttendeeRepository(db *sql.DB) domain.AttendeeRepository {
	return &attendeeRepository{DB: db}
}

func (r *attendeeRepository) GetByID(ctx context.Context, id string) (*domain.Attendee, error) {
	query := `
		SELECT id, email, name
		FROM attendees
		WHERE id = $1
	`
	a := &domain.Attendee{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
