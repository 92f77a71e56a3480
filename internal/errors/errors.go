package errors

import (
	stderrors "errors"
	"fmt"
)

// PatternError is the structured error type for wordle-patterns.
type PatternError struct {
	// Code is the unique error code (e.g., "ERR_201_SOURCE_UNAVAILABLE").
	Code string

	// Message is the human-readable error message.
	Message string

	Category Category
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
func (e *PatternError) Is(target error) bool {
	if t, ok := target.(*PatternError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *PatternError) WithDetail(key, value string) *PatternError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *PatternError) WithSuggestion(suggestion string) *PatternError {
	e.Suggestion = suggestion
	return e
}

// New creates a new PatternError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *PatternError {
	return &PatternError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a PatternError from an existing error.
func Wrap(code string, err error) *PatternError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// SourceUnavailable reports a word list that cannot be opened or read.
func SourceUnavailable(path string, cause error) *PatternError {
	return New(ErrCodeSourceUnavailable,
		fmt.Sprintf("failed to load word list %s: %v", path, cause), cause).
		WithDetail("path", path)
}

// EmptyCandidateSet reports a word list with no usable words after filtering.
func EmptyCandidateSet(path string, length int) *PatternError {
	return New(ErrCodeEmptyCandidateSet,
		fmt.Sprintf("no %d-letter words found in word list %s", length, path), nil).
		WithDetail("path", path).
		WithSuggestion("check that the word list has one word per line and matches the solution length")
}

// InvalidSymbol reports a character outside the pattern alphabet.
func InvalidSymbol(c rune, pos int) *PatternError {
	return New(ErrCodeInvalidSymbol,
		fmt.Sprintf("invalid pattern character %q at position %d", c, pos+1), nil).
		WithSuggestion("use G, Y, X, ? or *")
}

// LengthMismatch reports a word or pattern whose length differs from the solution's.
func LengthMismatch(what string, got, want int) *PatternError {
	return New(ErrCodeLengthMismatch,
		fmt.Sprintf("%s has length %d, want %d", what, got, want), nil)
}

// PatternsRejected reports that n lines of a pattern block were not
// resolved. The report for the other lines is still complete.
func PatternsRejected(n int) *PatternError {
	noun := "lines"
	if n == 1 {
		noun = "line"
	}
	return New(ErrCodePatternsRejected, fmt.Sprintf("%d pattern %s rejected", n, noun), nil)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *PatternError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// as finds the first PatternError in err's chain.
func as(err error) (*PatternError, bool) {
	var pe *PatternError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsFatal checks if an error has fatal severity.
// Errors that are not PatternErrors are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if pe, ok := as(err); ok {
		return pe.Severity == SeverityFatal
	}
	return true
}

// GetCode extracts the error code from a PatternError.
// Returns empty string if err does not carry one.
func GetCode(err error) string {
	if pe, ok := as(err); ok {
		return pe.Code
	}
	return ""
}
