package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// WriteLevelFile writes one level's quiz sentences (header level,word,sentence)
// in the order given. Rows of any other level are refused.
func WriteLevelFile(path string, level domain.Level, rows []domain.QuizSentence) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		if r.Level != level {
			return fmt.Errorf("write %s: %w: row %d has level %q", path, domain.ErrValidation, i, r.Level)
		}
		records[i] = []string{r.Level.String(), r.Word, r.Sentence}
	}
	if err := writeCSV(path, domain.SentenceHeader, records); err != nil {
		return fmt.Errorf("write level file: %w", err)
	}
	return nil
}

// ReadSentences reads a file with header level,word,sentence: a level file or
// the level2 staging file. Rows with a bad level, empty word or empty sentence
// are skipped.
func ReadSentences(path string) ([]domain.QuizSentence, []error, error) {
	t, err := readTable(path, true)
	if err != nil {
		return nil, nil, fmt.Errorf("read sentences: %w", err)
	}
	out, skipped := sentenceRows(path, t)
	return out, append(t.errs, skipped...), nil
}

func sentenceRows(path string, t *table) ([]domain.QuizSentence, []error) {
	levelCol := t.column("level", 0)
	wordCol := t.column("word", 1)
	sentCol := t.column("sentence", 2)

	var (
		out     []domain.QuizSentence
		skipped []error
	)
	for _, rec := range t.records {
		if len(rec.fields) < 3 {
			skipped = append(skipped, rowError(path, rec, "expected 3 columns, got %d", len(rec.fields)))
			continue
		}
		word, level, err := wordLevel(path, rec, wordCol, levelCol)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		sentence := field(rec, sentCol)
		if sentence == "" {
			skipped = append(skipped, rowError(path, rec, "empty sentence"))
			continue
		}
		out = append(out, domain.QuizSentence{Level: level, Word: word, Sentence: sentence})
	}
	return out, skipped
}

// AppendStaging appends rows to the level2 staging file, creating it with a
// header when absent. The file is rewritten atomically; existing rows are
// copied verbatim, including rows ReadStaging would skip.
func AppendStaging(path string, rows []domain.QuizSentence) error {
	header := domain.SentenceHeader
	var records [][]string

	t, err := readTable(path, true)
	switch {
	case isMissing(err):
	case err != nil:
		return fmt.Errorf("append staging: %w", err)
	default:
		if len(t.header) > 0 {
			header = t.header
		}
		for _, rec := range t.records {
			records = append(records, rec.fields)
		}
	}

	for _, r := range rows {
		records = append(records, []string{r.Level.String(), r.Word, r.Sentence})
	}
	if err := writeCSV(path, header, records); err != nil {
		return fmt.Errorf("append staging: %w", err)
	}
	return nil
}

// ReadStaging reads the level2 staging file. A missing file yields no rows.
func ReadStaging(path string) ([]domain.QuizSentence, []error, error) {
	rows, skipped, err := ReadSentences(path)
	if isMissing(err) {
		return nil, nil, nil
	}
	return rows, skipped, err
}

// BatchPath renders the scratch file name of batch n (1-based) from a
// printf-style pattern such as "l4_batch_%02d.csv".
func BatchPath(dir, pattern string, n int) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, n))
}

// WriteBatchFile writes a header-less scratch file of (level,word,template)
// rows. Templates carry the authoring blank.
func WriteBatchFile(path string, rows []domain.QuizSentence) error {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{r.Level.String(), r.Word, r.Sentence}
	}
	if err := writeCSV(path, nil, records); err != nil {
		return fmt.Errorf("write batch file: %w", err)
	}
	return nil
}

var verbRe = regexp.MustCompile(`%0?\d*d`)

// ReadBatchFiles reads every scratch file in dir matching pattern, in batch
// number order, and groups the templates by lower-cased word. A directory
// without scratch files yields an empty map.
func ReadBatchFiles(dir, pattern string) (map[string][]string, []error, error) {
	glob := filepath.Join(dir, verbRe.ReplaceAllString(pattern, "*"))
	paths, err := filepath.Glob(glob)
	if err != nil {
		return nil, nil, fmt.Errorf("read batch files: %w", err)
	}
	sort.Slice(paths, func(i, j int) bool {
		return batchNumber(paths[i]) < batchNumber(paths[j])
	})

	out := make(map[string][]string)
	var skipped []error
	for _, p := range paths {
		t, err := readTable(p, false)
		if err != nil {
			return nil, nil, fmt.Errorf("read batch files: %w", err)
		}
		rows, errs := sentenceRows(p, t)
		skipped = append(skipped, t.errs...)
		skipped = append(skipped, errs...)
		for _, r := range rows {
			key := domain.NormalizeText(r.Word)
			out[key] = append(out[key], r.Sentence)
		}
	}
	return out, skipped, nil
}

var digitsRe = regexp.MustCompile(`\d+`)

func batchNumber(path string) int {
	m := digitsRe.FindAllString(filepath.Base(path), -1)
	if len(m) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(m[len(m)-1])
	return n
}

func isMissing(err error) bool {
	return errors.Is(err, domain.ErrInputMissing)
}

// ParseSentenceRows parses literal level,word,sentence rows, one per line,
// as given on a command line. A leading header line is ignored.
func ParseSentenceRows(text string) ([]domain.QuizSentence, []error, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	t := &table{}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: rows: %v", domain.ErrMalformedRow, err)
		}
		if isBlank(fields) {
			continue
		}
		if len(t.records) == 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "level") {
			continue
		}
		line, _ := reader.FieldPos(0)
		t.records = append(t.records, record{line: line, fields: fields})
	}
	rows, skipped := sentenceRows("--rows", t)
	return rows, skipped, nil
}
