package quiz

import (
	"regexp"
	"sort"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// inflection derives one regular form from a lower-case stem.
type inflection struct {
	name  string
	when  func(stem string) bool
	build func(stem string) string
}

// inflectionTable lists the regular English inflections absorbed by the blank.
// Spelling rules (final -e, consonant + y, sibilants, short CVC stems) are rows
// of the table rather than branches in the matcher.
var inflectionTable = []inflection{
	{"base", always, suffix("")},
	{"s", always, suffix("s")},
	{"ed", always, suffix("ed")},
	{"ing", always, suffix("ing")},
	{"ly", always, suffix("ly")},
	{"ness", always, suffix("ness")},
	{"es", endsWithSibilant, suffix("es")},
	{"e+d", endsWithE, suffix("d")},
	{"e-ing", endsWithSilentE, replaceLast(1, "ing")},
	{"le-ly", endsWithLE, replaceLast(1, "y")},
	{"y-ies", endsWithConsonantY, replaceLast(1, "ies")},
	{"y-ied", endsWithConsonantY, replaceLast(1, "ied")},
	{"y-ily", endsWithConsonantY, replaceLast(1, "ily")},
	{"y-iness", endsWithConsonantY, replaceLast(1, "iness")},
	{"cvc-ed", isShortCVC, doubleLast("ed")},
	{"cvc-ing", isShortCVC, doubleLast("ing")},
}

// Inflections returns the headword and its regular inflections, lower-cased,
// de-duplicated, longest first. For a multi-word headword only the first word
// is inflected ("look after" → "looked after").
func Inflections(word string) []string {
	word = domain.NormalizeText(word)
	if word == "" {
		return nil
	}

	head, rest, _ := strings.Cut(word, " ")
	if rest != "" {
		rest = " " + rest
	}

	seen := make(map[string]bool, len(inflectionTable))
	forms := make([]string, 0, len(inflectionTable))
	for _, inf := range inflectionTable {
		if !inf.when(head) {
			continue
		}
		form := inf.build(head) + rest
		if seen[form] {
			continue
		}
		seen[form] = true
		forms = append(forms, form)
	}

	sort.SliceStable(forms, func(i, j int) bool {
		return len(forms[i]) > len(forms[j])
	})
	return forms
}

// InflectionPattern compiles a case-insensitive whole-word matcher for every
// form returned by Inflections.
func InflectionPattern(word string) *regexp.Regexp {
	forms := Inflections(word)
	if len(forms) == 0 {
		return nil
	}
	alts := make([]string, len(forms))
	for i, f := range forms {
		alts[i] = strings.ReplaceAll(regexp.QuoteMeta(f), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)
}

func always(string) bool { return true }

func suffix(s string) func(string) string {
	return func(stem string) string { return stem + s }
}

func replaceLast(n int, s string) func(string) string {
	return func(stem string) string { return stem[:len(stem)-n] + s }
}

func doubleLast(s string) func(string) string {
	return func(stem string) string { return stem + stem[len(stem)-1:] + s }
}

func isVowel(b byte) bool {
	return strings.IndexByte("aeiou", b) >= 0
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !isVowel(b)
}

func endsWithE(stem string) bool {
	return strings.HasSuffix(stem, "e")
}

// endsWithSilentE excludes -ee/-ye/-oe stems, which keep the e before -ing (agreeing, dyeing).
func endsWithSilentE(stem string) bool {
	if len(stem) < 3 || !endsWithE(stem) {
		return false
	}
	prev := stem[len(stem)-2]
	return prev != 'e' && prev != 'y' && prev != 'o'
}

func endsWithLE(stem string) bool {
	return len(stem) > 3 && strings.HasSuffix(stem, "le") && isConsonant(stem[len(stem)-3])
}

func endsWithConsonantY(stem string) bool {
	return len(stem) > 2 && strings.HasSuffix(stem, "y") && isConsonant(stem[len(stem)-2])
}

func endsWithSibilant(stem string) bool {
	for _, s := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(stem, s) {
			return true
		}
	}
	return false
}

// isShortCVC matches one-syllable consonant-vowel-consonant stems (stop, plan, grab).
func isShortCVC(stem string) bool {
	n := len(stem)
	if n < 3 || n > 4 {
		return false
	}
	last, mid, first := stem[n-1], stem[n-2], stem[n-3]
	if !isConsonant(last) || strings.IndexByte("wxy", last) >= 0 {
		return false
	}
	if !isVowel(mid) || !isConsonant(first) {
		return false
	}
	vowels := 0
	for i := 0; i < n; i++ {
		if isVowel(stem[i]) {
			vowels++
		}
	}
	return vowels == 1
}
