package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/provider"
)

// minExampleWords is the length at which an entry's own example sentence becomes a candidate.
const minExampleWords = 8

type sentenceSource interface {
	GenerateSentences(ctx context.Context, req provider.SentenceRequest) ([]string, error)
}

// SentenceGenerator authors quiz sentence candidates for a completed entry.
type SentenceGenerator struct {
	log   *slog.Logger
	rules *Rules
	gen   sentenceSource
	max   int
}

// NewSentenceGenerator creates a SentenceGenerator. gen may be nil, in which
// case only the example sentence and templates are used.
func NewSentenceGenerator(logger *slog.Logger, rules *Rules, gen sentenceSource, maxPerWord int) *SentenceGenerator {
	if maxPerWord <= 0 || maxPerWord > domain.MaxSentencesPerWord {
		maxPerWord = domain.MaxSentencesPerWord
	}
	return &SentenceGenerator{
		log:   logger.With("component", "sentence_generator"),
		rules: rules,
		gen:   gen,
		max:   maxPerWord,
	}
}

// Candidates returns up to max raw candidates, in order of preference:
// the entry's example sentence, then the scratch rows for the word if any were
// authored ahead of time, otherwise the level templates followed by provider
// sentences. Candidates are not yet normalised.
//
// A provider failure is returned wrapped in domain.ErrGeneratorFailure together
// with the candidates gathered so far.
func (g *SentenceGenerator) Candidates(ctx context.Context, level domain.Level, entry domain.VocabularyEntry, scratch []string) ([]string, error) {
	var out []string

	if ex := strings.TrimSpace(entry.ExampleSentence); len(strings.Fields(ex)) >= minExampleWords {
		out = append(out, ex)
	}

	if len(scratch) > 0 {
		out = append(out, scratch...)
		return capAt(out, g.max), nil
	}

	for _, t := range g.rules.TemplatesFor(level) {
		if s, ok := renderTemplate(t, entry); ok {
			out = append(out, s)
		}
	}

	if g.gen == nil || len(out) >= g.max {
		return capAt(out, g.max), nil
	}

	extra, err := g.gen.GenerateSentences(ctx, provider.SentenceRequest{
		Word:    entry.Word,
		Meaning: entry.Meaning,
		Level:   level,
		Count:   g.max - len(out),
	})
	if err != nil {
		return capAt(out, g.max), fmt.Errorf("%w: sentences for %q: %v", domain.ErrGeneratorFailure, entry.Word, err)
	}
	for _, s := range extra {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	g.log.DebugContext(ctx, "provider sentences", slog.String("word", entry.Word), slog.Int("count", len(extra)))
	return capAt(out, g.max), nil
}

// renderTemplate fills the entry placeholders of a template. It reports false
// when a placeholder it needs is empty.
func renderTemplate(t string, e domain.VocabularyEntry) (string, bool) {
	values := map[string]string{
		"{word}":     e.Word,
		"{meaning}":  strings.TrimRight(strings.TrimSpace(e.Meaning), ".!"),
		"{synonym1}": strings.TrimSpace(e.Synonym1),
		"{synonym2}": strings.TrimSpace(e.Synonym2),
		"{antonym1}": strings.TrimSpace(e.Antonym1),
		"{antonym2}": strings.TrimSpace(e.Antonym2),
	}
	pairs := make([]string, 0, 2*len(values))
	for ph, v := range values {
		if !strings.Contains(t, ph) {
			continue
		}
		if v == "" {
			return "", false
		}
		pairs = append(pairs, ph, v)
	}
	return strings.NewReplacer(pairs...).Replace(t), true
}

func capAt(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
