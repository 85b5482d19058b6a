package domain

import "strings"

// VocabularyEntry is one row of the vocabulary catalogue.
// Word keeps its original capitalisation; Key() is the catalogue key.
type VocabularyEntry struct {
	Word            string
	Meaning         string
	Synonym1        string
	Synonym2        string
	Antonym1        string
	Antonym2        string
	ExampleSentence string

	// Extra holds columns of the catalogue file that the pipeline does not interpret,
	// keyed by header name. They are written back untouched.
	Extra map[string]string
}

func (VocabularyEntry) rowKind() RowKind { return RowKindCatalogue }

// Key returns the lower-cased catalogue key.
func (e VocabularyEntry) Key() string {
	return NormalizeText(e.Word)
}

// IsComplete reports whether every content field is populated.
func (e VocabularyEntry) IsComplete() bool {
	for _, f := range e.contentFields() {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// HasMeaning reports whether the entry carries curated or generated content.
func (e VocabularyEntry) HasMeaning() bool {
	return strings.TrimSpace(e.Meaning) != ""
}

func (e VocabularyEntry) contentFields() []string {
	return []string{e.Meaning, e.Synonym1, e.Synonym2, e.Antonym1, e.Antonym2, e.ExampleSentence}
}

// CatalogueHeader is the canonical column order of the catalogue file.
var CatalogueHeader = []string{"word", "meaning", "synonym1", "synonym2", "antonym1", "antonym2", "example_sentence"}

// Field returns the value of a canonical catalogue column, or an Extra column.
func (e VocabularyEntry) Field(name string) string {
	switch name {
	case "word":
		return e.Word
	case "meaning":
		return e.Meaning
	case "synonym1":
		return e.Synonym1
	case "synonym2":
		return e.Synonym2
	case "antonym1":
		return e.Antonym1
	case "antonym2":
		return e.Antonym2
	case "example_sentence":
		return e.ExampleSentence
	}
	return e.Extra[name]
}

// SetField assigns a column by header name. Unknown columns go to Extra.
func (e *VocabularyEntry) SetField(name, value string) {
	switch name {
	case "word":
		e.Word = value
	case "meaning":
		e.Meaning = value
	case "synonym1":
		e.Synonym1 = value
	case "synonym2":
		e.Synonym2 = value
	case "antonym1":
		e.Antonym1 = value
	case "antonym2":
		e.Antonym2 = value
	case "example_sentence":
		e.ExampleSentence = value
	default:
		if e.Extra == nil {
			e.Extra = make(map[string]string)
		}
		e.Extra[name] = value
	}
}
