package cli

import (
	"errors"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/auth"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown resources or formats.
	ExitUsage = 2

	// ExitNotFound indicates the backend has no such record.
	ExitNotFound = 3

	// ExitDataErr indicates the backend answered with data we could not read.
	ExitDataErr = 4

	// ExitValidation indicates the backend or a local check rejected input.
	ExitValidation = 5

	// ExitAuth indicates a missing, rejected or expired session.
	// Use for: Commands run before login, wrong credentials, expired tokens.
	ExitAuth = 6
)

// UsageError marks a mistake in how the command was invoked
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// reportedError is an error the formatter already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as printed so main does not print it again
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// IsReported tells whether err went through Reported
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// ExitCode picks the exit code for err
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, auth.ErrNotSignedIn),
		errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrSessionExpired),
		api.IsKind(err, api.KindUnauthorized),
		api.IsKind(err, api.KindForbidden):
		return ExitAuth
	case api.IsKind(err, api.KindNotFound):
		return ExitNotFound
	case api.IsKind(err, api.KindInvalid), api.IsKind(err, api.KindConflict):
		return ExitValidation
	}
	if e, ok := api.AsError(err); ok && e.Status >= 200 && e.Status < 300 {
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode is the machine readable code printed with --json errors
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitAuth:
		return "AUTH_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	return "ERROR"
}
