package domain

// RowKind tags the fixed record types read at CSV stage boundaries.
type RowKind string

const (
	RowKindCatalogue RowKind = "CATALOGUE"
	RowKindSentence  RowKind = "SENTENCE"
	RowKindMissing   RowKind = "MISSING"
)

// Row is implemented by VocabularyEntry, QuizSentence and MissingWord.
type Row interface {
	rowKind() RowKind
}

// KindOf returns the tag of a row.
func KindOf(r Row) RowKind { return r.rowKind() }

// MissingWord is one row of the missing-words top-up file.
type MissingWord struct {
	Word       string
	WordLower  string
	Level      Level
	Difficulty string
}

func (MissingWord) rowKind() RowKind { return RowKindMissing }
