package stub

import (
	"context"
	"testing"

	"github.com/heartmarshall/vocabquiz/internal/domain"
	"github.com/heartmarshall/vocabquiz/internal/provider"
)

func TestGenerator_GenerateEntry_ReturnsNil(t *testing.T) {
	t.Parallel()

	got, err := New().GenerateEntry(context.Background(), provider.EntryRequest{Word: "brave", Level: domain.Level1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil entry, got %+v", got)
	}
}

func TestGenerator_GenerateSentences_ReturnsNil(t *testing.T) {
	t.Parallel()

	got, err := New().GenerateSentences(context.Background(), provider.SentenceRequest{Word: "brave", Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil sentences, got %v", got)
	}
}
