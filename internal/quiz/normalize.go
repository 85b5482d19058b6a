package quiz

import (
	"regexp"
	"strings"
	"sync"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

var (
	authoringBlankRe = regexp.MustCompile(`(?i)<\s*blank\s*>`)
	underscoreRunRe  = regexp.MustCompile(`_{3,}`)
	blankLeakRe      = regexp.MustCompile(regexp.QuoteMeta(domain.Blank) + `-?[A-Za-z]+`)
	multiSpaceRe     = regexp.MustCompile(`\s+`)
)

// Normalizer converts candidate sentences into the canonical single-blank form.
// It is the only place where the authoring token becomes the canonical blank.
type Normalizer struct {
	mu       sync.Mutex
	patterns map[string]*regexp.Regexp
}

// NewNormalizer creates a Normalizer with an empty pattern cache.
func NewNormalizer() *Normalizer {
	return &Normalizer{patterns: make(map[string]*regexp.Regexp)}
}

// Normalize blanks every whole-word inflection of word in sentence, converts
// authoring and legacy blank tokens, and strips letters glued to the blank
// (a morphology leak such as "_____s" or "_____ation"). It does not decide
// whether the result is acceptable; that is the validator's job.
func (n *Normalizer) Normalize(word, sentence string) string {
	s := authoringBlankRe.ReplaceAllString(sentence, domain.Blank)
	s = underscoreRunRe.ReplaceAllString(s, domain.Blank)

	if re := n.pattern(word); re != nil {
		s = re.ReplaceAllString(s, domain.Blank)
	}

	s = blankLeakRe.ReplaceAllString(s, domain.Blank)
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ToAuthoring renders a canonical sentence with the authoring token, for scratch files.
func ToAuthoring(sentence string) string {
	return strings.ReplaceAll(sentence, domain.Blank, domain.AuthoringBlank)
}

func (n *Normalizer) pattern(word string) *regexp.Regexp {
	key := domain.NormalizeText(word)
	n.mu.Lock()
	defer n.mu.Unlock()
	if re, ok := n.patterns[key]; ok {
		return re
	}
	re := InflectionPattern(key)
	n.patterns[key] = re
	return re
}
