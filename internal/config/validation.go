package config

import "fmt"

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field      string // Key path (e.g., "server.port")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
}

// Error returns a formatted error message
func (e ValidationError) Error() string {
	msg := fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	result := fmt.Sprintf("found %d validation errors:\n", len(e))
	for i, err := range e {
		result += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return result
}
