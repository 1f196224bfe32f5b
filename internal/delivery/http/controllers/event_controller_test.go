package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expopass/internal/delivery/http/helpers"
	"expopass/internal/domain"
)

type mockEventRepo struct {
	events map[string]*domain.Event
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	event.ID = testEventID
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func TestEventController_CreateEvent(t *testing.T) {
	ctrl := NewEventController(discardLogger(), &mockEventRepo{})

	body := `{"name":"Spring Expo","location":"Hall A","date":"2025-05-10","start_time":"09:00","end_time":"17:00"}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp struct {
		Data  *domain.Event     `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.StartTime.String() != "09:00" || resp.Data.EndTime.String() != "17:00" {
		t.Fatalf("unexpected window %s-%s", resp.Data.StartTime, resp.Data.EndTime)
	}
}

func TestEventController_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"name":"","date":"2025-05-10","start_time":"09:00","end_time":"17:00"}`},
		{"bad date", `{"name":"Expo","date":"10/05/2025","start_time":"09:00","end_time":"17:00"}`},
		{"bad start time", `{"name":"Expo","date":"2025-05-10","start_time":"9am","end_time":"17:00"}`},
		{"window inverted", `{"name":"Expo","date":"2025-05-10","start_time":"17:00","end_time":"09:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewEventController(discardLogger(), &mockEventRepo{})

			req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			ctrl.CreateEvent(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestEventController_GetEvent(t *testing.T) {
	repo := &mockEventRepo{events: map[string]*domain.Event{
		testEventID: {ID: testEventID, Name: "Spring Expo"},
	}}
	ctrl := NewEventController(discardLogger(), repo)

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID, nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestEventController_GetEvent_NotFound(t *testing.T) {
	ctrl := NewEventController(discardLogger(), &mockEventRepo{})

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID, nil)
	req.SetPathValue("eventID", testEventID)
	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
