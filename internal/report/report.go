// Package report grades the quiz sentence corpus per level.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// Grade summarises the issue fraction of a level.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
)

// GradeFor maps an issue fraction to a grade: 0 → A+, < 10% → A, < 20% → B, otherwise C.
func GradeFor(fraction float64) Grade {
	switch {
	case fraction <= 0:
		return GradeAPlus
	case fraction < 0.10:
		return GradeA
	case fraction < 0.20:
		return GradeB
	}
	return GradeC
}

// LevelStats accumulates the counts of one level.
type LevelStats struct {
	Level domain.Level
	// Candidates is the number of sentences evaluated (accepted or not).
	Candidates int
	Issues     map[domain.IssueKind]int

	words  []string
	counts map[string]int
}

func newLevelStats(level domain.Level) *LevelStats {
	return &LevelStats{
		Level:  level,
		Issues: make(map[domain.IssueKind]int),
		counts: make(map[string]int),
	}
}

// AddSentences records n emitted sentences for word.
func (s *LevelStats) AddSentences(word string, n int) {
	key := domain.NormalizeText(word)
	if _, ok := s.counts[key]; !ok {
		s.words = append(s.words, key)
	}
	s.counts[key] += n
}

// AddIssue records n sentences turned away for kind.
func (s *LevelStats) AddIssue(kind domain.IssueKind, n int) {
	s.Issues[kind] += n
}

// AddCandidates records n evaluated sentences.
func (s *LevelStats) AddCandidates(n int) {
	s.Candidates += n
}

// Sentences returns the number of emitted sentences.
func (s *LevelStats) Sentences() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Words returns the number of words with at least one emitted sentence.
func (s *LevelStats) Words() int {
	n := 0
	for _, c := range s.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// PerWord returns the emitted sentence count of every recorded word, in recording order.
func (s *LevelStats) PerWord() []WordCount {
	out := make([]WordCount, len(s.words))
	for i, w := range s.words {
		out[i] = WordCount{Word: w, Sentences: s.counts[w]}
	}
	return out
}

// WordCount is the number of sentences emitted for one word.
type WordCount struct {
	Word      string
	Sentences int
}

// IssueCount returns the total of the issue histogram.
func (s *LevelStats) IssueCount() int {
	total := 0
	for _, n := range s.Issues {
		total += n
	}
	return total
}

// IssueFraction returns issues over evaluated candidates, 0 when nothing was evaluated.
func (s *LevelStats) IssueFraction() float64 {
	if s.Candidates == 0 {
		return 0
	}
	return float64(s.IssueCount()) / float64(s.Candidates)
}

// Grade grades the level.
func (s *LevelStats) Grade() Grade {
	return GradeFor(s.IssueFraction())
}

// Report is the quality report of one run.
type Report struct {
	RunID  string
	levels map[domain.Level]*LevelStats

	// EntriesRequested, EntriesGenerated and EntriesFailed count entry generator outcomes.
	EntriesRequested int
	EntriesGenerated int
	EntriesFailed    int
	// RowsSkipped counts malformed input rows skipped at stage boundaries.
	RowsSkipped int
	// GeneratorFailures counts failed sentence generator calls.
	GeneratorFailures int
}

// New creates an empty report.
func New(runID string) *Report {
	r := &Report{RunID: runID, levels: make(map[domain.Level]*LevelStats, len(domain.AllLevels))}
	for _, l := range domain.AllLevels {
		r.levels[l] = newLevelStats(l)
	}
	return r
}

// Level returns the stats of level, creating them if needed.
func (r *Report) Level(level domain.Level) *LevelStats {
	s, ok := r.levels[level]
	if !ok {
		s = newLevelStats(level)
		r.levels[level] = s
	}
	return s
}

// Totals aggregates every level into one LevelStats with an empty Level.
func (r *Report) Totals() *LevelStats {
	total := newLevelStats("")
	for _, l := range domain.AllLevels {
		s := r.Level(l)
		total.Candidates += s.Candidates
		for k, n := range s.Issues {
			total.Issues[k] += n
		}
		for _, wc := range s.PerWord() {
			total.AddSentences(string(l)+"/"+wc.Word, wc.Sentences)
		}
	}
	return total
}

// Grade grades the whole run.
func (r *Report) Grade() Grade {
	return r.Totals().Grade()
}

// WriteText renders the report as an aligned plain-text table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "LEVEL\tWORDS\tSENTENCES\tPER WORD\tMIN\tMAX\tISSUES\tRATE\tGRADE")
	for _, l := range domain.AllLevels {
		writeRow(tw, l.String(), r.Level(l))
	}
	writeRow(tw, "total", r.Totals())
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"LEVEL"}
	for _, k := range domain.AllIssueKinds {
		header = append(header, k.String())
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, l := range domain.AllLevels {
		row := []string{l.String()}
		for _, k := range domain.AllIssueKinds {
			row = append(row, fmt.Sprint(r.Level(l).Issues[k]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nentries: requested=%d generated=%d failed=%d  skipped rows=%d  generator failures=%d\ngrade: %s\n",
		r.EntriesRequested, r.EntriesGenerated, r.EntriesFailed, r.RowsSkipped, r.GeneratorFailures, r.Grade())
	return err
}

func writeRow(w io.Writer, name string, s *LevelStats) {
	perWord := s.PerWord()
	minN, maxN, avg := 0, 0, 0.0
	if len(perWord) > 0 {
		minN = perWord[0].Sentences
		for _, wc := range perWord {
			minN = min(minN, wc.Sentences)
			maxN = max(maxN, wc.Sentences)
		}
		avg = float64(s.Sentences()) / float64(len(perWord))
	}
	fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%d\t%d\t%d/%d\t%.1f%%\t%s\n",
		name, s.Words(), s.Sentences(), avg, minN, maxN,
		s.IssueCount(), s.Candidates, 100*s.IssueFraction(), s.Grade())
}
