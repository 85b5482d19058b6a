// Package provider defines the contract between the content pipeline and the
// external prose generator. The generator may be remote; from the pipeline's
// point of view every call is a synchronous request.
package provider

import (
	"context"

	"github.com/heartmarshall/vocabquiz/internal/domain"
)

// EntryRequest asks for a full vocabulary entry.
type EntryRequest struct {
	Word string
	// CurrentMeaning is the curated meaning, if any. The generator should keep its sense.
	CurrentMeaning string
	Level          domain.Level
}

// EntryResult is the generator's answer to an EntryRequest.
// Every field is revalidated by the entry generator before it reaches the catalogue.
type EntryResult struct {
	Meaning         string `json:"meaning"`
	Synonym1        string `json:"synonym1"`
	Synonym2        string `json:"synonym2"`
	Antonym1        string `json:"antonym1"`
	Antonym2        string `json:"antonym2"`
	ExampleSentence string `json:"example_sentence"`
}

// SentenceRequest asks for quiz sentence candidates containing the headword.
type SentenceRequest struct {
	Word    string
	Meaning string
	Level   domain.Level
	Count   int
}

// Generator produces candidate prose. A nil *EntryResult or an empty slice with a
// nil error means "nothing generated".
type Generator interface {
	GenerateEntry(ctx context.Context, req EntryRequest) (*EntryResult, error)
	GenerateSentences(ctx context.Context, req SentenceRequest) ([]string, error)
}
