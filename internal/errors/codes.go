// Package errors provides structured error handling for wordle-patterns.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (word list)
//   - 4XX: Validation errors (patterns, words)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	CategoryConfig     Category = "CONFIG"
	CategoryIO         Category = "IO"
	CategoryValidation Category = "VALIDATION"
	CategoryInternal   Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal aborts the run.
	SeverityFatal Severity = "FATAL"
	// SeverityError fails one pattern; the run continues.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid    = "ERR_101_CONFIG_INVALID"
	ErrCodeConfigUnreadable = "ERR_102_CONFIG_UNREADABLE"

	// IO errors (200-299)
	ErrCodeSourceUnavailable = "ERR_201_SOURCE_UNAVAILABLE"
	ErrCodeEmptyCandidateSet = "ERR_202_EMPTY_CANDIDATE_SET"

	// Validation errors (400-499)
	ErrCodeInvalidSymbol    = "ERR_401_INVALID_SYMBOL"
	ErrCodeLengthMismatch   = "ERR_402_LENGTH_MISMATCH"
	ErrCodePatternsRejected = "ERR_403_PATTERNS_REJECTED"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "101" from "ERR_101_CONFIG_INVALID"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Pattern-level problems are recoverable; everything else stops the run.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeInvalidSymbol, ErrCodeLengthMismatch, ErrCodePatternsRejected:
		return SeverityError
	default:
		return SeverityFatal
	}
}
