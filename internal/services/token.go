package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"expopass/internal/domain"
)

type tokenGenerator struct{}

// NewTokenGenerator returns a TokenGenerator producing 64-character hex
// tokens. Each token digests the attendee ID, event ID, issuance timestamp,
// and 16 bytes from crypto/rand, so tokens are unique with overwhelming
// probability and cannot be derived from the IDs alone.
func NewTokenGenerator() domain.TokenGenerator {
	return &tokenGenerator{}
}

func (g *tokenGenerator) Generate(attendeeID, eventID string) (string, error) {
	if attendeeID == "" || eventID == "" {
		return "", fmt.Errorf("token generator: attendeeID and eventID are required")
	}
	entropy := make([]byte, 16)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(time.Now().UnixNano()))

	h := sha256.New()
	h.Write([]byte(attendeeID))
	h.Write([]byte{0})
	h.Write([]byte(eventID))
	h.Write([]byte{0})
	h.Write(ts[:])
	h.Write(entropy)
	return hex.EncodeToString(h.Sum(nil)), nil
}
