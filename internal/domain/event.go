package domain

import (
	"context"
	"time"
)

// Event represents a scheduled expo event. Scheduling fields (Date, StartTime,
// EndTime) are treated as immutable once published; check-in evaluation reads
// them but never writes.
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(name, location string, date time.Time, start, end TimeOfDay, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:      name,
		Location:  location,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
}
