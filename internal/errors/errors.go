package apperrors

import (
	"context"
	"errors"
	"fmt"

	"github.com/agbru/scoreboard/internal/scoreboard"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorRejected = 2   // Indicates a scripted scoreboard operation was rejected.
	ExitErrorServer   = 3   // Indicates the HTTP server failed to start or stop cleanly.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
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

// ServerError wraps a failure of the HTTP server lifecycle (listen, serve,
// shutdown) while preserving the original cause.
type ServerError struct {
	// Op is the lifecycle step that failed, e.g. "listen" or "shutdown".
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns "server <op>: <cause>".
func (e ServerError) Error() string {
	return fmt.Sprintf("server %s: %v", e.Op, e.Cause)
}

// Unwrap returns the original cause.
func (e ServerError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsRejection reports whether err is one of the scoreboard's rejected-operation
// errors (invalid team name, already exists, does not exist, invalid score).
func IsRejection(err error) bool {
	return errors.Is(err, scoreboard.ErrInvalidTeamName) ||
		errors.Is(err, scoreboard.ErrAlreadyExists) ||
		errors.Is(err, scoreboard.ErrDoesNotExist) ||
		errors.Is(err, scoreboard.ErrInvalidScore)
}

// ExitCodeFor maps an error to the process exit code. A nil error maps to
// ExitSuccess; unknown errors map to ExitErrorGeneric.
func ExitCodeFor(err error) int {
	var (
		configErr ConfigError
		serverErr ServerError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &serverErr):
		return ExitErrorServer
	case IsRejection(err):
		return ExitErrorRejected
	default:
		return ExitErrorGeneric
	}
}
