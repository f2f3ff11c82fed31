package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/services/record"
	"github.com/thenoetrevino/fete/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: configuration errors, unreachable backends, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or an unknown record kind.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: a snapshot that cannot be decoded at load time.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: blank IDs, unstorable values or, with strict references,
	// unknown references.
	ExitValidation = 5

	// ExitConflict indicates the operation clashes with existing records.
	// Use for: duplicate IDs or deleting a record an event still uses.
	ExitConflict = 6

	// ExitPersistence indicates a snapshot could not be written.
	ExitPersistence = 7
)

// StatusError carries the exit code a failed command should terminate with
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error { return e.Err }

// WithStatus attaches an exit code to err
func WithStatus(code int, err error) error {
	return &StatusError{Code: code, Err: err}
}

// StatusCode returns the process exit code for an error returned by a command
func StatusCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return ExitCodeFor(err)
}

// ExitCodeFor classifies a record operation error
func ExitCodeFor(err error) int {
	var persistErr *store.PersistenceError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, store.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, store.ErrDuplicateKey), errors.Is(err, record.ErrStillReferenced):
		return ExitConflict
	case errors.Is(err, store.ErrEmptyID), errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, forms.ErrInvalidHours), errors.Is(err, record.ErrUnknownReference):
		return ExitValidation
	case errors.Is(err, models.ErrUnknownKind), errors.Is(err, record.ErrEventRequiresDetails):
		return ExitUsage
	case errors.As(err, &persistErr) && persistErr.Op == "load":
		return ExitDataErr
	case errors.As(err, &persistErr):
		return ExitPersistence
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON output
func ErrorCode(err error) string {
	var persistErr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, store.ErrDuplicateKey):
		return "DUPLICATE_ID"
	case errors.Is(err, record.ErrStillReferenced):
		return "STILL_REFERENCED"
	case errors.Is(err, store.ErrEmptyID):
		return "EMPTY_ID"
	case errors.Is(err, store.ErrInvalidValue), errors.Is(err, forms.ErrInvalidHours):
		return "INVALID_VALUE"
	case errors.Is(err, record.ErrUnknownReference):
		return "UNKNOWN_REFERENCE"
	case errors.Is(err, models.ErrUnknownKind):
		return "UNKNOWN_KIND"
	case errors.Is(err, record.ErrEventRequiresDetails):
		return "EVENT_REQUIRES_DETAILS"
	case errors.As(err, &persistErr) && persistErr.Op == "load":
		return "DATA_ERROR"
	case errors.As(err, &persistErr):
		return "PERSISTENCE_ERROR"
	default:
		return "ERROR"
	}
}
