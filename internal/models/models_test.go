package models

import (
	"errors"
	"math"
	"testing"
)

// ============================================================================
// Kind Tests
// ============================================================================

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"employee", KindEmployee},
		{"Employees", KindEmployee},
		{"CLIENT", KindClient},
		{"guests", KindGuest},
		{" supplier ", KindSupplier},
		{"venues", KindVenue},
		{"event", KindEvent},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		if err != nil {
			t.Errorf("ParseKind(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("caterer")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestKinds_SixDistinct(t *testing.T) {
	seen := make(map[Kind]bool)
	for _, k := range Kinds() {
		if seen[k] {
			t.Errorf("Kind %q listed twice", k)
		}
		seen[k] = true
		if !k.Valid() {
			t.Errorf("Kind %q should be valid", k)
		}
	}
	if len(seen) != 6 {
		t.Errorf("Expected 6 kinds, got %d", len(seen))
	}
	if len(NameKinds()) != 5 {
		t.Errorf("Expected 5 name kinds, got %d", len(NameKinds()))
	}
}

func TestKind_Names(t *testing.T) {
	if KindEmployee.Title() != "Employee" {
		t.Errorf("Title = %q, want Employee", KindEmployee.Title())
	}
	if KindVenue.Plural() != "venues" {
		t.Errorf("Plural = %q, want venues", KindVenue.Plural())
	}
	if KindEvent.HoldsName() {
		t.Error("event kind should not hold a bare name")
	}
	if !KindGuest.HoldsName() {
		t.Error("guest kind should hold a bare name")
	}
	if Kind("nope").Valid() {
		t.Error("unknown kind should not be valid")
	}
}

// ============================================================================
// Event Tests
// ============================================================================

func TestEvent_CloneDoesNotAlias(t *testing.T) {
	ev := Event{GuestIDs: []string{"G1", "G2"}, SupplierIDs: []string{"S1"}}
	cp := ev.Clone()
	cp.GuestIDs[0] = "changed"
	cp.SupplierIDs = append(cp.SupplierIDs, "S2")

	if ev.GuestIDs[0] != "G1" {
		t.Errorf("Clone aliased guest IDs: %v", ev.GuestIDs)
	}
	if len(ev.SupplierIDs) != 1 {
		t.Errorf("Clone aliased supplier IDs: %v", ev.SupplierIDs)
	}
}

func TestEvent_References(t *testing.T) {
	ev := Event{ClientID: "C1", GuestIDs: []string{"G1", "G2"}, SupplierIDs: []string{"S1"}}

	tests := []struct {
		kind Kind
		id   string
		want bool
	}{
		{KindClient, "C1", true},
		{KindClient, "C2", false},
		{KindGuest, "G2", true},
		{KindSupplier, "S1", true},
		{KindSupplier, "S9", false},
		{KindEmployee, "C1", false},
	}

	for _, tt := range tests {
		if got := ev.References(tt.kind, tt.id); got != tt.want {
			t.Errorf("References(%s, %s) = %v, want %v", tt.kind, tt.id, got, tt.want)
		}
	}
}

func TestEvent_Validate(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		field  string
		reason string
	}{
		{"zero value", Event{}, "", ""},
		{"negative duration", Event{Duration: -2}, "", ""},
		{"unicode text", Event{Theme: "Fête", GuestIDs: []string{"Zoë"}}, "", ""},
		{"nan", Event{Duration: math.NaN()}, "duration", ReasonNotFinite},
		{"infinite", Event{Duration: math.Inf(-1)}, "duration", ReasonNotFinite},
		{"bad type", Event{Type: "Gal\xe1"}, "type", ReasonNotUTF8},
		{"bad client", Event{ClientID: "C\xff"}, "client ID", ReasonNotUTF8},
		{"bad guest", Event{GuestIDs: []string{"G1", "G\xff"}}, "guest IDs", ReasonNotUTF8},
		{"bad supplier", Event{SupplierIDs: []string{"S\xfe"}}, "supplier IDs", ReasonNotUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("Validate() = %v, want a FieldError", err)
			}
			if fe.Field != tt.field || fe.Reason != tt.reason {
				t.Errorf("Validate() = %q/%q, want %q/%q", fe.Field, fe.Reason, tt.field, tt.reason)
			}
		})
	}
}
