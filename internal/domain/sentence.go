package domain

import "strings"

const (
	// Blank is the canonical on-disk blank token.
	Blank = "_____"
	// AuthoringBlank is the blank token used in scratch and staging files.
	AuthoringBlank = "<blank>"
	// MaxSentencesPerWord caps the quiz sentences emitted for one word.
	MaxSentencesPerWord = 10
)

// QuizSentence is one fill-in-the-blank sentence for a headword.
type QuizSentence struct {
	Level    Level
	Word     string
	Sentence string
}

func (QuizSentence) rowKind() RowKind { return RowKindSentence }

// BlankCount returns the number of canonical blanks in the sentence.
func (q QuizSentence) BlankCount() int {
	return strings.Count(q.Sentence, Blank)
}

// SentenceHeader is the header of level files and the level2 staging file.
var SentenceHeader = []string{"level", "word", "sentence"}
