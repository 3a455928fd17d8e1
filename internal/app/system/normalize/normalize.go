// Package normalize trims and canonicalizes user-supplied strings before
// they are validated or stored.
package normalize

import (
	"strings"
)

// Email trims surrounding space and lowercases the address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims and collapses internal runs of whitespace.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Tags splits a comma-separated list, trimming entries and dropping blanks.
func Tags(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
