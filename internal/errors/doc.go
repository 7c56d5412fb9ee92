// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// validation, server lifecycle) and for carrying the underlying cause. It
// also maps errors to the process exit codes reported by the binary.
//
// Rejected scoreboard operations are not defined here: they live in the
// scoreboard package next to the registry that produces them.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types that carry a cause implement Unwrap() to support errors.Is()
// and errors.As().
package apperrors
