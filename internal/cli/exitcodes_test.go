package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/services/record"
	"github.com/thenoetrevino/fete/internal/store"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		tag  string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"not found", &store.NotFoundError{Kind: "venue", ID: "V1"}, ExitNotFound, "NOT_FOUND"},
		{"duplicate", &store.DuplicateKeyError{Kind: "venue", ID: "V1"}, ExitConflict, "DUPLICATE_ID"},
		{"still referenced", &record.ReferenceError{Kind: models.KindGuest, ID: "G1", EventID: "EV1", Err: record.ErrStillReferenced}, ExitConflict, "STILL_REFERENCED"},
		{"unknown reference", &record.ReferenceError{Kind: models.KindGuest, ID: "G9", EventID: "EV1", Err: record.ErrUnknownReference}, ExitValidation, "UNKNOWN_REFERENCE"},
		{"empty id", store.ErrEmptyID, ExitValidation, "EMPTY_ID"},
		{"unstorable text", &store.InvalidValueError{Kind: "guest", ID: "G\xff", Field: "ID", Reason: models.ReasonNotUTF8}, ExitValidation, "INVALID_VALUE"},
		{"non-finite duration typed in a form", forms.ErrInvalidHours, ExitValidation, "INVALID_VALUE"},
		{"unknown kind", fmt.Errorf("%w: %q", models.ErrUnknownKind, "caterer"), ExitUsage, "UNKNOWN_KIND"},
		{"event via add", record.ErrEventRequiresDetails, ExitUsage, "EVENT_REQUIRES_DETAILS"},
		{"corrupt snapshot", &store.PersistenceError{Kind: "guest", Op: "load", Err: errors.New("yaml: bad")}, ExitDataErr, "DATA_ERROR"},
		{"save failed", &store.PersistenceError{Kind: "guest", Op: "save", Err: errors.New("disk full")}, ExitPersistence, "PERSISTENCE_ERROR"},
		{"other", errors.New("boom"), ExitError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFor(tt.err); got != tt.code {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.code)
			}
			if tt.err == nil {
				return
			}
			if got := ErrorCode(tt.err); got != tt.tag {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.tag)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(nil); got != ExitSuccess {
		t.Errorf("StatusCode(nil) = %d, want 0", got)
	}

	wrapped := fmt.Errorf("running command: %w", WithStatus(ExitNotFound, errors.New("missing")))
	if got := StatusCode(wrapped); got != ExitNotFound {
		t.Errorf("StatusCode(wrapped) = %d, want %d", got, ExitNotFound)
	}

	// Errors without an attached status are classified
	if got := StatusCode(&store.DuplicateKeyError{Kind: "guest", ID: "G1"}); got != ExitConflict {
		t.Errorf("StatusCode(duplicate) = %d, want %d", got, ExitConflict)
	}

	se := WithStatus(ExitUsage, nil)
	if se.Error() != "exit status 2" {
		t.Errorf("unexpected message %q", se.Error())
	}
}
