package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"expopass/internal/delivery/http/helpers"
	"expopass/internal/delivery/http/middleware"
	"expopass/internal/domain"
)

// uuidRegex matches a canonical UUID string (8-4-4-4-12 hex).
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// RegisterResponse is the data payload for POST /attendee/events/{eventID}/registrations.
// EmailSent is false when the registration was created but the attendance
// pass email could not be delivered; clients should then show the token inline.
type RegisterResponse struct {
	Registration *domain.Registration `json:"registration"`
	EmailSent    bool                 `json:"email_sent"`
}

// RegisterSuccessResponse is the success response envelope for POST /attendee/events/{eventID}/registrations (201).
type RegisterSuccessResponse struct {
	Data  *RegisterResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Register godoc
// @Summary Register the current attendee for an event
// @Description Registers the authenticated attendee for the specified event and emails them the attendance pass. The registration (including the pass token) is returned even when email delivery fails; email_sent reports delivery.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 201 {object} controllers.RegisterSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendee/events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if !uuidRegex.MatchString(eventID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return
	}

	attendeeID, ok := middleware.AttendeeIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	reg, notified, err := c.Service.Register(r.Context(), attendeeID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrAttendeeNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "already registered for this event")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, &RegisterResponse{
		Registration: reg,
		EmailSent:    notified,
	})
}

// ListMyRegistrationsItem is an item in the response for GET /attendee/events.
type ListMyRegistrationsItem struct {
	Event        *domain.Event        `json:"event"`
	Registration *domain.Registration `json:"registration"`
}

// ListMyRegistrationsSuccessResponse is the success response envelope for GET /attendee/events (200).
type ListMyRegistrationsSuccessResponse struct {
	Data  []ListMyRegistrationsItem `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// ListMyRegistrations godoc
// @Summary Get events the current attendee is registered for
// @Description Returns the list of events the authenticated attendee is registered for, including the attendance pass and attendance state.
// @Tags attendee
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ListMyRegistrationsSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendee/events [get]
func (c *RegistrationController) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	attendeeID, ok := middleware.AttendeeIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	items, err := c.Service.ListMyRegistrations(r.Context(), attendeeID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}

	responseItems := make([]ListMyRegistrationsItem, 0, len(items))
	for _, it := range items {
		responseItems = append(responseItems, ListMyRegistrationsItem{
			Event:        it.Event,
			Registration: it.Registration,
		})
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, responseItems)
}
