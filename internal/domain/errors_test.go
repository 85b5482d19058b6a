package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("meaning", "required")

	if got := err.Error(); got != "validation: meaning: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "synonym1", Message: "required"},
		{Field: "antonym2", Message: "duplicates antonym1"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestRowError_WrapsMalformedRow(t *testing.T) {
	t.Parallel()

	var err error = &RowError{Path: "data/vocabularyList.csv", Line: 4, Reason: "expected 2 columns, got 3"}
	wrapped := fmt.Errorf("load index: %w", err)

	if !errors.Is(wrapped, ErrMalformedRow) {
		t.Fatal("errors.Is(wrapped, ErrMalformedRow) = false")
	}
	if got := err.Error(); got != "data/vocabularyList.csv:4: expected 2 columns, got 3" {
		t.Errorf("Error() = %q", got)
	}
}

func TestRejectError_CarriesKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("sentence 3: %w", &RejectError{Kind: IssuePossessiveBlank})

	if !errors.Is(err, ErrValidationReject) {
		t.Fatal("errors.Is(err, ErrValidationReject) = false")
	}
	var rej *RejectError
	if !errors.As(err, &rej) {
		t.Fatal("errors.As(err, *RejectError) = false")
	}
	if rej.Kind != IssuePossessiveBlank {
		t.Errorf("Kind = %q, want %q", rej.Kind, IssuePossessiveBlank)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrInputMissing, ErrMalformedRow, ErrGeneratorFailure,
		ErrValidationReject, ErrIOFailure, ErrValidation,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
