// Package notify turns record operation outcomes into user-facing messages.
package notify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/services/record"
	"github.com/thenoetrevino/fete/internal/store"
)

// Notification is one message shown to the user
type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

// Added reports a successful add
func Added(kind models.Kind) Notification {
	return Notification{Severity: Info, Title: "Success", Message: kind.Title() + " added successfully."}
}

// Deleted reports a successful delete
func Deleted(kind models.Kind) Notification {
	return Notification{Severity: Info, Title: "Success", Message: kind.Title() + " deleted successfully."}
}

// Details shows every field of a record
func Details(rec *models.Record) Notification {
	return Notification{Severity: Info, Title: rec.Kind.Title() + " Details", Message: DetailText(rec)}
}

// DetailText lists a record's fields one per line
func DetailText(rec *models.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ID: %s\n", rec.Kind.Title(), rec.ID)
	if rec.Event == nil {
		fmt.Fprintf(&b, "Name: %s", rec.Name)
		return b.String()
	}

	ev := rec.Event
	fmt.Fprintf(&b, "Type: %s\n", ev.Type)
	fmt.Fprintf(&b, "Theme: %s\n", ev.Theme)
	fmt.Fprintf(&b, "Date: %s\n", ev.Date)
	fmt.Fprintf(&b, "Time: %s\n", ev.Time)
	fmt.Fprintf(&b, "Duration: %s hours\n", FormatHours(ev.Duration))
	fmt.Fprintf(&b, "Venue Address: %s\n", ev.VenueAddress)
	fmt.Fprintf(&b, "Client ID: %s\n", ev.ClientID)
	fmt.Fprintf(&b, "Guest IDs: %s\n", strings.Join(ev.GuestIDs, ", "))
	fmt.Fprintf(&b, "Supplier IDs: %s\n", strings.Join(ev.SupplierIDs, ", "))
	fmt.Fprintf(&b, "Invoice: %s", ev.Invoice)
	return b.String()
}

// FormatHours prints a duration without trailing zeros ("2.5", "3")
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Failed maps an operation error to the message shown for it
func Failed(kind models.Kind, err error) Notification {
	n := Notification{Severity: Error, Title: "Error"}

	var refErr *record.ReferenceError
	var invalidErr *store.InvalidValueError
	var persistErr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrDuplicateKey):
		n.Message = kind.Title() + " with ID already exists."
	case errors.Is(err, store.ErrNotFound):
		n.Message = kind.Title() + " not found."
	case errors.Is(err, store.ErrEmptyID):
		n.Message = kind.Title() + " ID cannot be empty."
	case errors.As(err, &invalidErr):
		n.Message = fmt.Sprintf("%s %s %s.", kind.Title(), invalidErr.Field, invalidErr.Reason)
	case errors.As(err, &refErr) && errors.Is(err, record.ErrStillReferenced):
		n.Severity = Warning
		n.Message = fmt.Sprintf("%s is still used by event %s.", kind.Title(), refErr.EventID)
	case errors.As(err, &refErr):
		n.Message = fmt.Sprintf("Event references unknown %s %s.", refErr.Kind, refErr.ID)
	case errors.As(err, &persistErr):
		n.Message = fmt.Sprintf("%s changes could not be saved: %v", kind.Title(), persistErr.Err)
	default:
		n.Message = capitalize(err.Error()) + "."
	}
	return n
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
