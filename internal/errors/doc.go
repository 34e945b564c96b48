// Package apperrors defines the structured error types of fibiter and the
// process exit codes they map to.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Wrapped errors remain inspectable with errors.Is() and errors.As().
package apperrors
