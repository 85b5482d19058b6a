// Package stub provides an offline content generator.
package stub

import (
	"context"

	"github.com/heartmarshall/vocabquiz/internal/provider"
)

// Generator is a no-op content generator. It never produces entries or
// sentences, so the pipeline falls back to curated content, templates and
// scratch files.
type Generator struct{}

// New creates a no-op generator.
func New() *Generator { return &Generator{} }

// GenerateEntry always returns nil: nothing generated.
func (g *Generator) GenerateEntry(ctx context.Context, req provider.EntryRequest) (*provider.EntryResult, error) {
	return nil, nil
}

// GenerateSentences always returns nil: nothing generated.
func (g *Generator) GenerateSentences(ctx context.Context, req provider.SentenceRequest) ([]string, error) {
	return nil, nil
}

var _ provider.Generator = (*Generator)(nil)
