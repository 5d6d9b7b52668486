package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple title", "Hello", "hello"},
		{"multi word", "Hello World", "hello-world"},
		{"punctuation stripped", "Go & Fiber, a love story!", "go-fiber-a-love-story"},
		{"digits kept", "Top 10 Posts", "top-10-posts"},
		{"underscores kept", "snake_case title", "snake_case-title"},
		{"surrounding whitespace", "  Trimmed  ", "trimmed"},
		{"space runs collapsed", "a    b", "a-b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIsStable(t *testing.T) {
	// Re-deriving from an unchanged name must never move the slug.
	name := "Concurrency in Go: Part 2"
	first := Make(name)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Make(name))
	}
}
