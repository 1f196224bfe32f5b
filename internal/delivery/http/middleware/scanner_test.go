package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubScannerVerifier struct {
	validKey string
}

func (s *stubScannerVerifier) VerifyKey(key string) error {
	if key != s.validKey {
		return errors.New("invalid scanner key")
	}
	return nil
}

func TestRequireScannerKey(t *testing.T) {
	verifier := &stubScannerVerifier{validKey: "door-7"}

	tests := []struct {
		name       string
		key        string
		wantStatus int
		wantCalled bool
	}{
		{"missing key", "", http.StatusUnauthorized, false},
		{"wrong key", "door-8", http.StatusUnauthorized, false},
		{"valid key", "door-7", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			}

			handler := RequireScannerKey(verifier)(next)
			req := httptest.NewRequest(http.MethodPost, "/checkin", nil)
			if tt.key != "" {
				req.Header.Set(ScannerKeyHeader, tt.key)
			}
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
