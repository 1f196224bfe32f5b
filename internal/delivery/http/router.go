package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"expopass/internal/delivery/http/controllers"
	"expopass/internal/delivery/http/middleware"
	"expopass/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Attendee routes require a Bearer token; the check-in route requires the
// scanner API key.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	scannerVerifier domain.ScannerKeyVerifier,
	registrationController *controllers.RegistrationController,
	checkInController *controllers.CheckInController,
	eventController *controllers.EventController,
) *http.ServeMux {
	mux := http.NewServeMux()

	withAuth := middleware.RequireAuth(verifier, logger)
	withScannerKey := middleware.RequireScannerKey(scannerVerifier)

	// Attendee
	mux.HandleFunc("POST /attendee/events/{eventID}/registrations", withAuth(registrationController.Register))
	mux.HandleFunc("GET /attendee/events", withAuth(registrationController.ListMyRegistrations))

	// Check-in scanners
	mux.HandleFunc("POST /checkin", withScannerKey(checkInController.CheckIn))

	// Events
	mux.HandleFunc("POST /events", withAuth(eventController.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", withAuth(eventController.GetEvent))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
