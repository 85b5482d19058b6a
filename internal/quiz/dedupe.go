package quiz

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// NearDuplicateThreshold is the Jaccard similarity at which two sentences collide.
const NearDuplicateThreshold = 0.80

// subsetMinWords is the content-word count above which a subset counts as a duplicate.
const subsetMinWords = 4

// functionWords are dropped from content-word sets. Pronouns carry no
// word-specific context, so "He was _____ ..." and "She was _____ ..." compare equal.
var functionWords = map[string]bool{
	"i": true, "me": true, "my": true, "you": true, "your": true,
	"he": true, "him": true, "his": true, "she": true, "her": true,
	"it": true, "its": true, "we": true, "us": true, "our": true,
	"they": true, "them": true, "their": true,
}

// Duplicate records a sentence dropped by Dedupe and the earlier sentence it collided with.
type Duplicate struct {
	Sentence string
	Of       string
	Exact    bool
}

// Dedupe removes exact and near-duplicate sentences of one word. Input order is
// authoritative: the earlier sentence always survives a collision.
func Dedupe(sentences []string) ([]string, []Duplicate) {
	var dropped []Duplicate

	// Pass 1: exact, on the canonical key.
	seen := make(map[string]string, len(sentences))
	exact := make([]string, 0, len(sentences))
	for _, s := range sentences {
		key := CanonicalKey(s)
		if first, ok := seen[key]; ok {
			dropped = append(dropped, Duplicate{Sentence: s, Of: first, Exact: true})
			continue
		}
		seen[key] = s
		exact = append(exact, s)
	}

	// Pass 2: near-duplicates against everything already kept.
	kept := make([]string, 0, len(exact))
	keptWords := make([]map[string]bool, 0, len(exact))
	for _, s := range exact {
		words := ContentWords(s)
		collided := -1
		for i, other := range keptWords {
			if IsNearDuplicate(words, other) {
				collided = i
				break
			}
		}
		if collided >= 0 {
			dropped = append(dropped, Duplicate{Sentence: s, Of: kept[collided]})
			continue
		}
		kept = append(kept, s)
		keptWords = append(keptWords, words)
	}

	return kept, dropped
}

// CanonicalKey lower-cases the sentence, drops punctuation other than the blank,
// and collapses whitespace.
func CanonicalKey(sentence string) string {
	var b strings.Builder
	b.Grow(len(sentence))
	for _, r := range strings.ToLower(sentence) {
		switch {
		case r == '_':
			b.WriteRune(r)
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContentWords returns the set of lower-case content words of a sentence,
// excluding the blank, punctuation and function words.
func ContentWords(sentence string) map[string]bool {
	s := strings.ReplaceAll(sentence, domain.Blank, " ")
	words := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	}) {
		tok = strings.Trim(tok, "'-")
		if tok == "" || functionWords[tok] {
			continue
		}
		words[tok] = true
	}
	return words
}

// Jaccard returns |a∩b| / |a∪b|; two empty sets score 0.
func Jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// IsNearDuplicate reports a Jaccard collision, or a subset relation where the
// smaller set has more than four words.
func IsNearDuplicate(a, b map[string]bool) bool {
	if Jaccard(a, b) >= NearDuplicateThreshold {
		return true
	}
	return (len(a) > subsetMinWords && isSubset(a, b)) || (len(b) > subsetMinWords && isSubset(b, a))
}

func isSubset(a, b map[string]bool) bool {
	for w := range a {
		if !b[w] {
			return false
		}
	}
	return true
}
