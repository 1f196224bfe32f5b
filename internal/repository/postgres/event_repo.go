package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expopass/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (name, location, date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		event.Name, event.Location, event.Date,
		event.StartTime.String(), event.EndTime.String(),
		event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, location, date, start_time, end_time, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	event := &domain.Event{}
	var startTime, endTime string
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&event.ID, &event.Name, &event.Location, &event.Date, &startTime, &endTime, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if event.StartTime, err = domain.ParseTimeOfDay(startTime); err != nil {
		return nil, fmt.Errorf("event %s has invalid start_time: %w", id, err)
	}
	if event.EndTime, err = domain.ParseTimeOfDay(endTime); err != nil {
		return nil, fmt.Errorf("event %s has invalid end_time: %w", id, err)
	}
	return event, nil
}
