package jsonrecover

import (
	"errors"
	"fmt"
)

const snippetLength = 100

var (
	// ErrInvalidInput is returned before any stage runs when the text is
	// empty, is not valid UTF-8, or exceeds the configured size cap.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoJSONStructure is returned when the cleaned text contains neither
	// '{' nor '['.
	ErrNoJSONStructure = errors.New("no JSON structure (object or array) found in the input")

	// ErrRecoveryExhausted is matched by [*RecoveryExhaustedError].
	ErrRecoveryExhausted = errors.New("failed to parse or recover JSON")
)

// RecoveryExhaustedError is returned when a starting point existed but no
// stage produced a parseable value.
type RecoveryExhaustedError struct {
	// Snippet holds at most the first 100 characters of the cleaned text.
	Snippet string
	// Stages lists the stages that were attempted, in order.
	Stages []Stage
	// Err is the last strict-parse error encountered.
	Err error
}

func newRecoveryExhaustedError(cleaned string, stages []Stage, err error) *RecoveryExhaustedError {
	return &RecoveryExhaustedError{
		Snippet: snippet(cleaned, snippetLength),
		Stages:  stages,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *RecoveryExhaustedError) Error() string {
	return fmt.Sprintf("%s, content snippet: %s...", ErrRecoveryExhausted, e.Snippet)
}

// Unwrap returns the last parse error.
func (e *RecoveryExhaustedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrRecoveryExhausted].
func (e *RecoveryExhaustedError) Is(target error) bool {
	return target == ErrRecoveryExhausted
}

// snippet returns the first n runes of s.
func snippet(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
