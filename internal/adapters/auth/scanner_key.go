package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"expopass/internal/domain"
)

type scannerKeyVerifier struct {
	keyHash string
}

// NewScannerKeyVerifier returns a ScannerKeyVerifier that compares presented
// scanner API keys against the configured bcrypt hash. Keys are pre-hashed
// with SHA256 so arbitrary key lengths stay within bcrypt's input limit.
func NewScannerKeyVerifier(keyHash string) domain.ScannerKeyVerifier {
	return &scannerKeyVerifier{keyHash: keyHash}
}

func (v *scannerKeyVerifier) VerifyKey(key string) error {
	if key == "" {
		return fmt.Errorf("missing scanner key")
	}
	sum := sha256.Sum256([]byte(key))
	if err := bcrypt.CompareHashAndPassword([]byte(v.keyHash), []byte(hex.EncodeToString(sum[:]))); err != nil {
		return fmt.Errorf("invalid scanner key")
	}
	return nil
}

// HashScannerKey produces the bcrypt hash expected in SCANNER_KEY_HASH for a
// given key. Exposed for provisioning tooling and tests.
func HashScannerKey(key string, cost int) (string, error) {
	sum := sha256.Sum256([]byte(key))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(sum[:])), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash scanner key: %w", err)
	}
	return string(hash), nil
}
