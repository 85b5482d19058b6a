package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

func TestGradeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fraction float64
		want     Grade
	}{
		{0, GradeAPlus},
		{0.001, GradeA},
		{0.0999, GradeA},
		{0.10, GradeB},
		{0.1999, GradeB},
		{0.20, GradeC},
		{1, GradeC},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.fraction); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.fraction, got, tt.want)
		}
	}
}

func TestLevelStats(t *testing.T) {
	t.Parallel()

	r := New("run-1")
	s := r.Level(domain.Level2)
	s.AddCandidates(20)
	s.AddSentences("Clarify", 8)
	s.AddSentences("brave", 10)
	s.AddSentences("ancient", 0)
	s.AddIssue(domain.IssueGenericTemplate, 1)
	s.AddIssue(domain.IssueDuplicate, 1)

	if got := s.Sentences(); got != 18 {
		t.Errorf("Sentences() = %d, want 18", got)
	}
	if got := s.Words(); got != 2 {
		t.Errorf("Words() = %d, want 2", got)
	}
	if got := s.IssueCount(); got != 2 {
		t.Errorf("IssueCount() = %d, want 2", got)
	}
	if got := s.IssueFraction(); got != 0.1 {
		t.Errorf("IssueFraction() = %v, want 0.1", got)
	}
	if got := s.Grade(); got != GradeB {
		t.Errorf("Grade() = %s, want B", got)
	}

	pw := s.PerWord()
	if len(pw) != 3 || pw[0] != (WordCount{Word: "clarify", Sentences: 8}) || pw[2].Sentences != 0 {
		t.Errorf("PerWord() = %+v", pw)
	}
}

func TestReport_EmptyIsAPlus(t *testing.T) {
	t.Parallel()

	r := New("run-1")
	if got := r.Grade(); got != GradeAPlus {
		t.Errorf("Grade() = %s, want A+", got)
	}
	for _, l := range domain.AllLevels {
		if got := r.Level(l).IssueFraction(); got != 0 {
			t.Errorf("%s IssueFraction() = %v", l, got)
		}
	}
}

func TestReport_TotalsAcrossLevels(t *testing.T) {
	t.Parallel()

	r := New("run-1")
	r.Level(domain.Level1).AddCandidates(50)
	r.Level(domain.Level1).AddSentences("brave", 10)
	r.Level(domain.Level4).AddCandidates(50)
	r.Level(domain.Level4).AddSentences("brave", 5)
	r.Level(domain.Level4).AddIssue(domain.IssueTooShort, 4)

	total := r.Totals()
	if total.Candidates != 100 || total.Sentences() != 15 || total.Words() != 2 {
		t.Errorf("totals = candidates %d sentences %d words %d", total.Candidates, total.Sentences(), total.Words())
	}
	if got := r.Grade(); got != GradeA {
		t.Errorf("Grade() = %s, want A", got)
	}
}

func TestReport_WriteText(t *testing.T) {
	t.Parallel()

	r := New("run-1")
	s := r.Level(domain.Level3)
	s.AddCandidates(10)
	s.AddSentences("ancient", 7)
	s.AddIssue(domain.IssuePossessiveBlank, 3)
	r.EntriesRequested = 2
	r.EntriesGenerated = 1
	r.EntriesFailed = 1

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"LEVEL", "GRADE", "POSSESSIVE_BLANK",
		"3/10", "30.0%",
		"entries: requested=2 generated=1 failed=1",
		"grade: C",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var level3 string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "level3") && strings.Contains(line, "%") {
			level3 = line
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(level3), "C") {
		t.Errorf("level3 row = %q, want grade C", level3)
	}
}
