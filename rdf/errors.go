package rdf

import (
	"context"
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeUnknownFormat indicates the caller requested an output format
	// the driver does not know how to produce.
	ErrCodeUnknownFormat ErrorCode = "UNKNOWN_FORMAT"
	// ErrCodeInvalidInput indicates a quad in the input dataset is malformed.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates a violated algorithm invariant.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeCancelled indicates the run's context was canceled or its
	// deadline expired.
	ErrCodeCancelled ErrorCode = "CANCELLED"
)

var (
	// ErrUnknownFormat is returned when Normalize is asked for an output
	// format it does not support.
	ErrUnknownFormat = errors.New("urdna2015: unknown output format")
	// ErrInvalidInput is returned when the input dataset cannot be indexed.
	ErrInvalidInput = errors.New("urdna2015: invalid input dataset")
	// ErrInternal is returned when Normalize detects a violated invariant.
	// Encountering it means the algorithm implementation has a bug, not
	// that the caller did anything wrong.
	ErrInternal = errors.New("urdna2015: internal invariant violation")
)

// Code returns the error code for an error. An error wrapping
// context.Canceled or context.DeadlineExceeded maps to ErrCodeCancelled;
// any other non-nil error that does not match a package sentinel maps to
// ErrCodeInvalidInput. Returns empty string for a nil error.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrUnknownFormat):
		return ErrCodeUnknownFormat
	case errors.Is(err, ErrInternal):
		return ErrCodeInternal
	case errors.Is(err, ErrInvalidInput):
		return ErrCodeInvalidInput
	}

	// Check for context cancellation before falling back, so a canceled
	// or timed-out run is never misreported as bad input.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeCancelled
	}

	return ErrCodeInvalidInput
}

// UnknownFormatError reports an output format Normalize does not support.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("urdna2015: unknown format %q", e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }

// InvalidInputError reports a structurally invalid quad encountered while
// indexing the dataset.
type InvalidInputError struct {
	// Reason describes what is wrong with the quad.
	Reason string
	// Quad is the offending quad, if known.
	Quad Quad
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("urdna2015: invalid input: %s", e.Reason)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// InternalError reports a violated algorithm invariant, such as a chosen
// issuer never being assigned after a non-empty permutation search.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("urdna2015: internal error: %s", e.Reason)
}

func (e *InternalError) Unwrap() error { return ErrInternal }
