package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expopass/internal/delivery/http/helpers"
	"expopass/internal/domain"
)

type CheckInController struct {
	Logger  *slog.Logger
	Service domain.CheckInService
	// Now returns the current time; overridable in tests.
	Now func() time.Time
}

func NewCheckInController(logger *slog.Logger, svc domain.CheckInService) *CheckInController {
	return &CheckInController{
		Logger:  logger,
		Service: svc,
		Now:     time.Now,
	}
}

// CheckInRequest is the request body for POST /checkin. Token is the opaque
// string decoded from the attendee's QR code.
type CheckInRequest struct {
	Token string `json:"token"`
}

// Validate implements helpers.Validator.
func (r *CheckInRequest) Validate() []string {
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		return []string{"token is required"}
	}
	return nil
}

// CheckInSuccessResponse is the success response envelope for POST /checkin (200).
type CheckInSuccessResponse struct {
	Data  *domain.VerificationOutcome `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// CheckIn godoc
// @Summary Verify a scanned attendance token
// @Description Classifies the scan into one of: invalid_token, event_in_future, event_ended, too_early, already_attended, success. All six classifications are outcomes rather than errors and return 200, with status-specific context (days_until, minutes_until_start, attended_at). Only a success outcome marks the registration attended, at most once per token.
// @Tags checkin
// @Accept json
// @Produce json
// @Security ScannerKey
// @Param body body controllers.CheckInRequest true "Scanned token"
// @Success 200 {object} controllers.CheckInSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /checkin [post]
func (c *CheckInController) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	outcome, err := c.Service.CheckIn(r.Context(), req.Token, c.Now())
	if err != nil {
		// Integrity and storage failures only; temporal outcomes never error.
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "check-in failed")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, outcome)
}
