package errors

import (
	"fmt"
	"strings"
)

// FormatForCLI formats an error for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	pe, ok := as(err)
	if !ok {
		pe = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", pe.Message))
	if pe.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", pe.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("  Code: %s\n", pe.Code))

	return sb.String()
}

// FormatForLog formats an error as slog attribute pairs.
func FormatForLog(err error) []any {
	if err == nil {
		return nil
	}

	pe, ok := as(err)
	if !ok {
		return []any{"error", err.Error()}
	}

	attrs := []any{
		"error_code", pe.Code,
		"message", pe.Message,
		"category", string(pe.Category),
		"severity", string(pe.Severity),
	}
	if pe.Cause != nil {
		attrs = append(attrs, "cause", pe.Cause.Error())
	}
	return attrs
}

// Message returns the bare message of err, without its code.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if pe, ok := as(err); ok {
		return pe.Message
	}
	return err.Error()
}
