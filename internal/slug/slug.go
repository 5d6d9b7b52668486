// Package slug derives URL-safe identifiers from display names. Posts and
// categories share the same derivation so a given name always maps to the
// same slug.
package slug

import (
	"regexp"
	"strings"
)

var (
	nonWordRe = regexp.MustCompile(`[^a-z0-9_ ]+`)
	spacesRe  = regexp.MustCompile(` +`)
)

// Make lowercases the input, strips non-word characters and turns space runs
// into single hyphens. Deterministic: the same name always yields the same
// slug.
func Make(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonWordRe.ReplaceAllString(s, "")
	return spacesRe.ReplaceAllString(s, "-")
}
