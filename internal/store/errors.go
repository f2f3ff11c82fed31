package store

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/fete/internal/models"
)

// Sentinels matched with errors.Is
var (
	ErrEmptyID      = errors.New("record ID cannot be empty")
	ErrDuplicateKey = errors.New("record already exists")
	ErrNotFound     = errors.New("record not found")
	ErrPersistence  = errors.New("snapshot could not be persisted")
	ErrInvalidValue = errors.New("value cannot be stored")
)

// DuplicateKeyError reports an add for an ID already present in the kind
type DuplicateKeyError struct {
	Kind models.Kind
	ID   string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with ID %q already exists", e.Kind.Title(), e.ID)
}

func (e *DuplicateKeyError) Is(target error) bool { return target == ErrDuplicateKey }

// NotFoundError reports a delete or get for an absent ID
type NotFoundError struct {
	Kind models.Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind.Title(), e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// InvalidValueError reports an ID or payload field the snapshot cannot hold
// as given. Nothing is stored.
type InvalidValueError struct {
	Kind   models.Kind
	ID     string
	Field  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s %q: %s %s", e.Kind, e.ID, e.Field, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// PersistenceError wraps a failure to read or write a kind's snapshot.
// Op is "load" or "save".
type PersistenceError struct {
	Kind models.Kind
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s snapshot %s failed: %v", e.Kind, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
