package quiz

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// prefixWindow is how many leading characters the banned-prefix check inspects.
const prefixWindow = 30

// openingPunct is skipped before a sentence is matched against banned prefixes.
const openingPunct = "\"'“”([ "

var (
	possessiveBlankRe = regexp.MustCompile(regexp.QuoteMeta(domain.Blank) + `['’]`)
	gluedBlankRe      = regexp.MustCompile(`[A-Za-z]-?` + regexp.QuoteMeta(domain.Blank) + `|` + regexp.QuoteMeta(domain.Blank) + `-?[A-Za-z]`)
	prefixGapRe       = regexp.MustCompile(`\s*(?:…|\.\.\.)\s*`)
)

// bannedPrefix is a compiled banned opening: the first segment anchors the
// sentence start, later segments must follow in order.
type bannedPrefix struct {
	raw      string
	segments []string
}

// Validator accepts or rejects canonical quiz sentences.
type Validator struct {
	rules      *Rules
	normalizer *Normalizer
	banned     []bannedPrefix
}

// NewValidator compiles the banned prefixes of rules.
func NewValidator(rules *Rules, normalizer *Normalizer) *Validator {
	v := &Validator{rules: rules, normalizer: normalizer}
	for _, p := range rules.BannedPrefixes {
		segs := prefixGapRe.Split(normalizeQuotes(strings.ToLower(strings.TrimSpace(p))), -1)
		var kept []string
		for _, s := range segs {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			v.banned = append(v.banned, bannedPrefix{raw: p, segments: kept})
		}
	}
	return v
}

// Check returns nil for an acceptable sentence, or a *domain.RejectError naming
// the first violated rule.
func (v *Validator) Check(level domain.Level, word, sentence string) error {
	switch n := strings.Count(sentence, domain.Blank); {
	case n == 0:
		return &domain.RejectError{Kind: domain.IssueNoBlank, Detail: "no blank"}
	case n > 1:
		return &domain.RejectError{Kind: domain.IssueNoBlank, Detail: "more than one blank"}
	}

	if possessiveBlankRe.MatchString(sentence) {
		return &domain.RejectError{Kind: domain.IssuePossessiveBlank}
	}
	if gluedBlankRe.MatchString(sentence) {
		return &domain.RejectError{Kind: domain.IssueMorphologyLeak, Detail: "letters attached to blank"}
	}
	if re := v.normalizer.pattern(word); re != nil {
		if m := re.FindString(sentence); m != "" {
			return &domain.RejectError{Kind: domain.IssueMorphologyLeak, Detail: "headword form " + m + " outside blank"}
		}
	}
	if p, ok := v.bannedPrefix(sentence); ok {
		return &domain.RejectError{Kind: domain.IssueGenericTemplate, Detail: p}
	}

	stripped := strings.TrimSpace(strings.Replace(sentence, domain.Blank, "", 1))
	if utf8.RuneCountInString(stripped) < level.MinSentenceChars() {
		return &domain.RejectError{Kind: domain.IssueTooShort}
	}
	return nil
}

func (v *Validator) bannedPrefix(sentence string) (string, bool) {
	lower := normalizeQuotes(strings.ToLower(strings.TrimSpace(sentence)))
	lower = strings.TrimLeft(lower, openingPunct)
	window := truncateRunes(lower, prefixWindow)

	for _, p := range v.banned {
		if !strings.HasPrefix(window, truncateRunes(p.segments[0], prefixWindow)) {
			continue
		}
		if !strings.HasPrefix(lower, p.segments[0]) {
			continue
		}
		rest := lower[len(p.segments[0]):]
		matched := true
		for _, seg := range p.segments[1:] {
			i := strings.Index(rest, seg)
			if i < 0 {
				matched = false
				break
			}
			rest = rest[i+len(seg):]
		}
		if matched {
			return p.raw, true
		}
	}
	return "", false
}

// Rejection is one sentence turned away by Filter.
type Rejection struct {
	Sentence string
	Kind     domain.IssueKind
	Detail   string
	// Replacement is the fallback sentence that took its place, if any.
	Replacement string
}

// Filter validates the sentences of one word in order. A rejected sentence is
// replaced in place by the next unused fallback for the word that itself passes
// validation and does not duplicate an accepted sentence; otherwise it is dropped.
func (v *Validator) Filter(level domain.Level, word string, sentences []string) ([]string, []Rejection) {
	fallbacks := v.rules.FallbacksFor(word)
	next := 0

	accepted := make([]string, 0, len(sentences))
	var rejected []Rejection

	for _, s := range sentences {
		err := v.Check(level, word, s)
		if err == nil {
			accepted = append(accepted, s)
			continue
		}

		rej := Rejection{Sentence: s}
		var re *domain.RejectError
		if errors.As(err, &re) {
			rej.Kind, rej.Detail = re.Kind, re.Detail
		}

		for next < len(fallbacks) {
			candidate := v.normalizer.Normalize(word, fallbacks[next])
			next++
			if v.Check(level, word, candidate) != nil {
				continue
			}
			if _, dups := Dedupe(append(append([]string(nil), accepted...), candidate)); len(dups) > 0 {
				continue
			}
			rej.Replacement = candidate
			accepted = append(accepted, candidate)
			break
		}
		rejected = append(rejected, rej)
	}
	return accepted, rejected
}

func normalizeQuotes(s string) string {
	return strings.NewReplacer("’", "'", "‘", "'").Replace(s)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
