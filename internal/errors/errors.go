package apperrors

import (
	"errors"
	"fmt"
)

// Process exit codes returned by the driver.
const (
	ExitSuccess           = 0 // Indicates successful execution.
	ExitErrorGeneric      = 1 // Indicates an unclassified error.
	ExitErrorInvalidInput = 2 // Indicates the requested index was rejected.
	ExitErrorConfig       = 4 // Indicates a configuration error.
)

// ConfigError represents an invalid ambient setting, such as an unknown log
// level in the environment.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewNegativeIndexError returns the ValidationError used when a Fibonacci
// index below zero is requested.
func NewNegativeIndexError(n int64) error {
	return ValidationError{Field: "n", Message: fmt.Sprintf("must be non-negative, got %d", n)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code that reports it.
// A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return ExitErrorInvalidInput
	}
	var configErr ConfigError
	if errors.As(err, &configErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
