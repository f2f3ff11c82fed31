package models

import (
	"math"
	"slices"
	"unicode/utf8"
)

// FieldError names a payload field whose value cannot be stored
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Reason }

// Reasons reported by FieldError
const (
	ReasonNotUTF8   = "must be valid UTF-8 text"
	ReasonNotFinite = "must be a finite number"
)

// Event is the structured payload stored for the event kind.
// Client, guest and supplier IDs are free-text references into the other kinds.
type Event struct {
	Type         string   `json:"type" yaml:"type"`
	Theme        string   `json:"theme" yaml:"theme"`
	Date         string   `json:"date" yaml:"date"`
	Time         string   `json:"time" yaml:"time"`
	Duration     float64  `json:"duration" yaml:"duration"` // hours
	VenueAddress string   `json:"venue_address" yaml:"venue_address"`
	ClientID     string   `json:"client_id" yaml:"client_id"`
	GuestIDs     []string `json:"guest_ids" yaml:"guest_ids"`
	SupplierIDs  []string `json:"supplier_ids" yaml:"supplier_ids"`
	Invoice      string   `json:"invoice" yaml:"invoice"`
}

// Clone returns a copy of the event that shares no slices with e
func (e Event) Clone() Event {
	out := e
	out.GuestIDs = slices.Clone(e.GuestIDs)
	out.SupplierIDs = slices.Clone(e.SupplierIDs)
	return out
}

// References reports whether the event points at id within the given kind
func (e Event) References(kind Kind, id string) bool {
	switch kind {
	case KindClient:
		return e.ClientID == id
	case KindGuest:
		return slices.Contains(e.GuestIDs, id)
	case KindSupplier:
		return slices.Contains(e.SupplierIDs, id)
	default:
		return false
	}
}

// Validate reports the first field that has no faithful snapshot encoding:
// text that is not UTF-8 or a duration that is NaN or infinite.
// Any other content, including a negative duration, is accepted.
func (e Event) Validate() error {
	if math.IsNaN(e.Duration) || math.IsInf(e.Duration, 0) {
		return &FieldError{Field: "duration", Reason: ReasonNotFinite}
	}
	text := []struct {
		field string
		value string
	}{
		{"type", e.Type},
		{"theme", e.Theme},
		{"date", e.Date},
		{"time", e.Time},
		{"venue address", e.VenueAddress},
		{"client ID", e.ClientID},
		{"invoice", e.Invoice},
	}
	for _, f := range text {
		if !utf8.ValidString(f.value) {
			return &FieldError{Field: f.field, Reason: ReasonNotUTF8}
		}
	}
	for _, id := range e.GuestIDs {
		if !utf8.ValidString(id) {
			return &FieldError{Field: "guest IDs", Reason: ReasonNotUTF8}
		}
	}
	for _, id := range e.SupplierIDs {
		if !utf8.ValidString(id) {
			return &FieldError{Field: "supplier IDs", Reason: ReasonNotUTF8}
		}
	}
	return nil
}
