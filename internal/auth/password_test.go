package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3r$ecret", hash, "stored credential must not be the plaintext")
	assert.True(t, CheckPassword("Sup3r$ecret", hash))
	assert.False(t, CheckPassword("Sup3r$ecreT", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	b, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "bcrypt salts each hash")
}

func TestPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		ok       bool
	}{
		{"all classes", "Abcdef1!", true},
		{"symbol other than punctuation", "Abcdef1 ", true},
		{"missing uppercase", "abcdef1!", false},
		{"missing lowercase", "ABCDEF1!", false},
		{"missing digit", "Abcdefg!", false},
		{"missing symbol", "Abcdefg1", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PasswordComplexity(tt.password)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
