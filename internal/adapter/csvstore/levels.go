package csvstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// IndexSources names the files the level index is built from.
type IndexSources struct {
	// MasterList has header word,assigned_level and is preferred.
	MasterList string
	// LevelIndex has header word,level and is read when MasterList is absent.
	LevelIndex string
	// MissingWords is an optional top-up with header word,word_lower,level,difficulty.
	MissingWords string
}

// IndexLoad is the result of LoadLevelIndex.
type IndexLoad struct {
	Index *domain.LevelIndex
	// Source is the file the index was built from.
	Source string
	// ToppedUp counts words added from the missing-words file.
	ToppedUp int
	// Skipped lists malformed or repeated rows.
	Skipped []error
}

// LoadLevelIndex builds the level index from the master list, or from the
// consumer-facing level index when the master list is absent, then appends
// words from the missing-words file that are not yet indexed. Only the
// absence of both primary files is fatal.
func LoadLevelIndex(src IndexSources) (*IndexLoad, error) {
	res := &IndexLoad{Index: domain.NewLevelIndex()}

	t, path, err := readFirst(src.MasterList, src.LevelIndex)
	if err != nil {
		return nil, fmt.Errorf("load level index: %w", err)
	}
	res.Source = path
	res.Skipped = append(res.Skipped, t.errs...)

	wordCol := t.column("word", 0)
	levelCol := t.column("assigned_level", t.column("level", 1))
	for _, rec := range t.records {
		word, level, err := wordLevel(path, rec, wordCol, levelCol)
		if err != nil {
			res.Skipped = append(res.Skipped, err)
			continue
		}
		if !res.Index.Add(word, level) {
			res.Skipped = append(res.Skipped, rowError(path, rec, "duplicate word %q", word))
		}
	}

	if src.MissingWords == "" {
		return res, nil
	}
	missing, skipped, err := ReadMissingWords(src.MissingWords)
	if errors.Is(err, domain.ErrInputMissing) {
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load level index: %w", err)
	}
	res.Skipped = append(res.Skipped, skipped...)
	for _, m := range missing {
		if res.Index.Add(m.Word, m.Level) {
			res.ToppedUp++
		}
	}
	return res, nil
}

// ReadMissingWords reads the missing-words top-up file in file order.
func ReadMissingWords(path string) ([]domain.MissingWord, []error, error) {
	t, err := readTable(path, true)
	if err != nil {
		return nil, nil, fmt.Errorf("read missing words: %w", err)
	}

	wordCol := t.column("word", 0)
	lowerCol := t.column("word_lower", 1)
	levelCol := t.column("level", 2)
	diffCol := t.column("difficulty", 3)

	skipped := t.errs
	var out []domain.MissingWord
	for _, rec := range t.records {
		word, level, err := wordLevel(path, rec, wordCol, levelCol)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		m := domain.MissingWord{
			Word:       word,
			WordLower:  domain.NormalizeText(field(rec, lowerCol)),
			Level:      level,
			Difficulty: field(rec, diffCol),
		}
		if m.WordLower == "" {
			m.WordLower = domain.NormalizeText(word)
		}
		out = append(out, m)
	}
	return out, skipped, nil
}

// WriteLevelIndex writes the consumer-facing level index (header word,level).
func WriteLevelIndex(path string, ix *domain.LevelIndex) error {
	words := ix.Words()
	records := make([][]string, len(words))
	for i, w := range words {
		l, _ := ix.LevelOf(w)
		records[i] = []string{w, l.String()}
	}
	if err := writeCSV(path, []string{"word", "level"}, records); err != nil {
		return fmt.Errorf("write level index: %w", err)
	}
	return nil
}

// readFirst reads the first of paths that exists.
func readFirst(paths ...string) (*table, string, error) {
	var tried []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		t, err := readTable(p, true)
		if errors.Is(err, domain.ErrInputMissing) {
			tried = append(tried, p)
			continue
		}
		return t, p, err
	}
	return nil, "", fmt.Errorf("%w: none of %s", domain.ErrInputMissing, strings.Join(tried, ", "))
}

func wordLevel(path string, rec record, wordCol, levelCol int) (string, domain.Level, error) {
	if wordCol >= len(rec.fields) || levelCol >= len(rec.fields) {
		return "", "", rowError(path, rec, "expected at least %d columns, got %d", max(wordCol, levelCol)+1, len(rec.fields))
	}
	word := strings.TrimSpace(rec.fields[wordCol])
	if word == "" {
		return "", "", rowError(path, rec, "empty word")
	}
	level, err := domain.ParseLevel(rec.fields[levelCol])
	if err != nil {
		return "", "", rowError(path, rec, "unknown level %q", rec.fields[levelCol])
	}
	return word, level, nil
}

func field(rec record, col int) string {
	if col < 0 || col >= len(rec.fields) {
		return ""
	}
	return strings.TrimSpace(rec.fields[col])
}
