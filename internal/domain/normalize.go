package domain

import (
	"strings"
)

// NormalizeText returns the canonical (catalogue key) form of a word or phrase:
// lower-cased, trimmed, with internal whitespace runs collapsed to one space.
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}
