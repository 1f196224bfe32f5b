package middleware

import (
	"net/http"

	h "expopass/internal/delivery/http/helpers"
	"expopass/internal/domain"
)

// ScannerKeyHeader carries the shared API key presented by check-in scanner devices.
const ScannerKeyHeader = "X-Scanner-Key"

// RequireScannerKey returns a wrapper that validates the scanner API key header.
// If the key is missing or invalid, it responds with 401 and does not call next.
func RequireScannerKey(verifier domain.ScannerKeyVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if err := verifier.VerifyKey(r.Header.Get(ScannerKeyHeader)); err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid scanner key")
				return
			}
			next(w, r)
		}
	}
}
