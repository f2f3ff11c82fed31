package record

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/fete/internal/models"
)

// Domain errors for the record service
var (
	// Request errors
	ErrUnknownKind          = models.ErrUnknownKind
	ErrEventRequiresDetails = errors.New("events carry details and must be added with AddEvent")

	// Reference errors, only returned with strict references enabled
	ErrUnknownReference = errors.New("event references an unknown record")
	ErrStillReferenced  = errors.New("record is still referenced by an event")
)

// ReferenceError names the record behind a reference failure.
// It unwraps to ErrUnknownReference or ErrStillReferenced.
type ReferenceError struct {
	Kind    models.Kind // kind of the referenced record
	ID      string
	EventID string
	Err     error
}

func (e *ReferenceError) Error() string {
	if e.Err == ErrStillReferenced {
		return fmt.Sprintf("%s %q is referenced by event %q", e.Kind, e.ID, e.EventID)
	}
	return fmt.Sprintf("event %q references unknown %s %q", e.EventID, e.Kind, e.ID)
}

func (e *ReferenceError) Unwrap() error { return e.Err }
