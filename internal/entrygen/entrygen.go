// Package entrygen fills vocabulary catalogue gaps through the content
// generator and revalidates everything it returns before it reaches the
// catalogue.
package entrygen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/provider"
	"github.com/heartmarshall/vocabquiz/internal/quiz"
)

// Recommended meaning length, in characters.
const (
	minMeaningChars = 35
	maxMeaningChars = 60
)

type entrySource interface {
	GenerateEntry(ctx context.Context, req provider.EntryRequest) (*provider.EntryResult, error)
}

type catalogue interface {
	Get(word string) (domain.VocabularyEntry, bool)
	Held(word string) bool
}

// Pending lists the indexed words whose catalogue row is absent or has no
// meaning, in index order. An existing row keeps its spelling of the word.
// Words whose row could not be read are held back for a human to fix.
func Pending(ix *domain.LevelIndex, cat catalogue) []provider.EntryRequest {
	var out []provider.EntryRequest
	for _, w := range ix.Words() {
		if cat.Held(w) {
			continue
		}
		level, _ := ix.LevelOf(w)
		e, ok := cat.Get(w)
		if ok && e.HasMeaning() {
			continue
		}
		req := provider.EntryRequest{Word: w, Level: level}
		if ok {
			req.Word = e.Word
		}
		out = append(out, req)
	}
	return out
}

// Outcome is the result for one requested word. Exactly one of Entry and Err is set.
type Outcome struct {
	Request  provider.EntryRequest
	Entry    *domain.VocabularyEntry
	Err      error
	Warnings []string
}

// Generator requests entries and revalidates them.
type Generator struct {
	log         *slog.Logger
	src         entrySource
	concurrency int
}

// New creates a Generator running up to concurrency requests at once.
func New(logger *slog.Logger, src entrySource, concurrency int) *Generator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Generator{
		log:         logger.With("component", "entry_generator"),
		src:         src,
		concurrency: concurrency,
	}
}

// Run generates an entry for every request. Outcomes are returned in request
// order regardless of completion order. Generator failures are recorded per
// outcome; only cancellation of ctx stops the run.
func (g *Generator) Run(ctx context.Context, reqs []provider.EntryRequest) ([]Outcome, error) {
	outcomes := make([]Outcome, len(reqs))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = g.generate(gctx, req)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generate entries: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate entries: %w", err)
	}
	return outcomes, nil
}

func (g *Generator) generate(ctx context.Context, req provider.EntryRequest) Outcome {
	out := Outcome{Request: req}

	res, err := g.src.GenerateEntry(ctx, req)
	if err != nil {
		out.Err = fmt.Errorf("%w: %q: %v", domain.ErrGeneratorFailure, req.Word, err)
		g.log.WarnContext(ctx, "entry generation failed", slog.String("word", req.Word), slog.String("error", err.Error()))
		return out
	}

	entry, warnings, err := Revalidate(req.Word, req.Level, res)
	out.Warnings = warnings
	if err != nil {
		out.Err = err
		g.log.WarnContext(ctx, "entry rejected", slog.String("word", req.Word), slog.String("error", err.Error()))
		return out
	}
	for _, w := range warnings {
		g.log.WarnContext(ctx, "entry warning", slog.String("word", req.Word), slog.String("warning", w))
	}
	out.Entry = &entry
	return out
}

// ErrNothingGenerated marks a generator that returned no entry.
var ErrNothingGenerated = errors.New("nothing generated")

// Revalidate turns a generator result into a catalogue entry. British
// spelling is applied first. A result with any empty field, repeated or
// overlapping synonyms and antonyms, or an example sentence that is too short
// or lacks the headword is rejected as a whole. A meaning outside the
// recommended length only produces a warning.
func Revalidate(word string, level domain.Level, res *provider.EntryResult) (domain.VocabularyEntry, []string, error) {
	reject := func(format string, args ...any) (domain.VocabularyEntry, []string, error) {
		return domain.VocabularyEntry{}, nil, fmt.Errorf("%w: %q: %s", domain.ErrGeneratorFailure, word, fmt.Sprintf(format, args...))
	}
	if res == nil {
		return domain.VocabularyEntry{}, nil, fmt.Errorf("%w: %q: %w", domain.ErrGeneratorFailure, word, ErrNothingGenerated)
	}

	keep := quiz.InflectionPattern(word)
	e := domain.VocabularyEntry{
		Word:            word,
		Meaning:         clean(res.Meaning, keep),
		Synonym1:        clean(res.Synonym1, keep),
		Synonym2:        clean(res.Synonym2, keep),
		Antonym1:        clean(res.Antonym1, keep),
		Antonym2:        clean(res.Antonym2, keep),
		ExampleSentence: clean(res.ExampleSentence, keep),
	}

	var missing []domain.FieldError
	for _, f := range []struct{ name, value string }{
		{"meaning", e.Meaning}, {"synonym1", e.Synonym1}, {"synonym2", e.Synonym2},
		{"antonym1", e.Antonym1}, {"antonym2", e.Antonym2}, {"example_sentence", e.ExampleSentence},
	} {
		if f.value == "" {
			missing = append(missing, domain.FieldError{Field: f.name, Message: "missing"})
		}
	}
	if len(missing) > 0 {
		return domain.VocabularyEntry{}, nil, fmt.Errorf("%w: %q: partial result: %w",
			domain.ErrGeneratorFailure, word, domain.NewValidationErrors(missing))
	}

	key := domain.NormalizeText(word)
	syn1, syn2 := domain.NormalizeText(e.Synonym1), domain.NormalizeText(e.Synonym2)
	ant1, ant2 := domain.NormalizeText(e.Antonym1), domain.NormalizeText(e.Antonym2)
	switch {
	case syn1 == syn2:
		return reject("synonyms repeat %q", e.Synonym1)
	case ant1 == ant2:
		return reject("antonyms repeat %q", e.Antonym1)
	}
	for _, s := range []string{syn1, syn2, ant1, ant2} {
		if s == key {
			return reject("headword listed as its own synonym or antonym")
		}
	}
	for _, s := range []string{syn1, syn2} {
		if s == ant1 || s == ant2 {
			return reject("%q is both a synonym and an antonym", s)
		}
	}

	if n := len(strings.Fields(e.ExampleSentence)); n < level.MinExampleWords() {
		return reject("example sentence has %d words, need %d", n, level.MinExampleWords())
	}
	if re := quiz.InflectionPattern(word); re == nil || !re.MatchString(e.ExampleSentence) {
		return reject("example sentence does not contain the headword")
	}

	var warnings []string
	if n := utf8.RuneCountInString(e.Meaning); n < minMeaningChars || n > maxMeaningChars {
		warnings = append(warnings, fmt.Sprintf("meaning is %d characters, recommended %d-%d", n, minMeaningChars, maxMeaningChars))
	}
	return e, warnings, nil
}

func clean(s string, keep *regexp.Regexp) string {
	return britishSpelling(strings.Join(strings.Fields(s), " "), keep)
}
