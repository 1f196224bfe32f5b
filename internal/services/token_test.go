package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_Generate(t *testing.T) {
	gen := NewTokenGenerator()

	token, err := gen.Generate("attendee-1", "event-1")
	require.NoError(t, err)
	require.Len(t, token, 64)
	for _, c := range token {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') {
			continue
		}
		t.Fatalf("token contains non-hex character %q", c)
	}
}

func TestTokenGenerator_Generate_RequiresIDs(t *testing.T) {
	gen := NewTokenGenerator()

	_, err := gen.Generate("", "event-1")
	assert.Error(t, err)
	_, err = gen.Generate("attendee-1", "")
	assert.Error(t, err)
}

func TestTokenGenerator_Generate_Unique(t *testing.T) {
	gen := NewTokenGenerator()

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		// Same inputs every time: uniqueness must come from timestamp + entropy.
		token, err := gen.Generate("attendee-1", "event-1")
		require.NoError(t, err)
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token after %d generations: %s", i, token)
		}
		seen[token] = struct{}{}
	}
}
