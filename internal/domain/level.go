package domain

import (
	"fmt"
	"strings"
)

// Level is a coarse difficulty bucket mapped to UK Years 3 to 6.
type Level string

const (
	Level1 Level = "level1"
	Level2 Level = "level2"
	Level3 Level = "level3"
	Level4 Level = "level4"
)

// AllLevels lists the levels in ascending difficulty.
var AllLevels = []Level{Level1, Level2, Level3, Level4}

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case Level1, Level2, Level3, Level4:
		return true
	}
	return false
}

// Rank returns 1..4 for valid levels and 0 otherwise.
func (l Level) Rank() int {
	switch l {
	case Level1:
		return 1
	case Level2:
		return 2
	case Level3:
		return 3
	case Level4:
		return 4
	}
	return 0
}

// IsAdvanced reports whether the level admits longer, more complex sentences (level3 and level4).
func (l Level) IsAdvanced() bool {
	return l.Rank() >= 3
}

// MinExampleWords is the minimum word count of a generated example sentence.
func (l Level) MinExampleWords() int {
	if l.IsAdvanced() {
		return 10
	}
	return 8
}

// MinSentenceChars is the minimum quiz sentence length once the blank is removed.
func (l Level) MinSentenceChars() int {
	if l.IsAdvanced() {
		return 50
	}
	return 40
}

// ParseLevel accepts "level1".."level4" (case-insensitive, surrounding spaces ignored).
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: unknown level %q", ErrMalformedRow, s)
	}
	return l, nil
}
