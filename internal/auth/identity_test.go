package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	tests := []struct {
		name    string
		caller  Identity
		ownerID string
		want    bool
	}{
		{"owner may modify", Identity{UserID: "u1", Role: "user"}, "u1", true},
		{"admin may modify anything", Identity{UserID: "u2", Role: "admin"}, "u1", true},
		{"stranger may not", Identity{UserID: "u2", Role: "user"}, "u1", false},
		{"empty owner never matches a caller", Identity{UserID: "u2", Role: "user"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.CanModify(tt.ownerID))
		})
	}
}
