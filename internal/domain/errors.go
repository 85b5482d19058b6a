package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all stages.
var (
	ErrInputMissing     = errors.New("input missing")
	ErrMalformedRow     = errors.New("malformed row")
	ErrGeneratorFailure = errors.New("generator failure")
	ErrValidationReject = errors.New("validation reject")
	ErrIOFailure        = errors.New("io failure")
	ErrValidation       = errors.New("validation error")
)

// RowError points at a CSV row rejected at a stage boundary.
type RowError struct {
	Path   string
	Line   int
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

func (e *RowError) Unwrap() error { return ErrMalformedRow }

// RejectError carries the issue kind of a rejected quiz sentence.
type RejectError struct {
	Kind   IssueKind
	Detail string
}

func (e *RejectError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("rejected: %s", e.Kind)
	}
	return fmt.Sprintf("rejected: %s (%s)", e.Kind, e.Detail)
}

func (e *RejectError) Unwrap() error { return ErrValidationReject }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
