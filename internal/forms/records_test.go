package forms

import (
	"errors"
	"slices"
	"testing"

	"github.com/thenoetrevino/fete/internal/config"
	"github.com/thenoetrevino/fete/internal/models"
)

func TestParseHours(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"3", 3, false},
		{"2.5", 2.5, false},
		{" 4 ", 4, false},
		{"three", 0, true},
		{"2h", 0, true},
		{"-1.5", -1.5, false},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"-Infinity", 0, true},
		{"1e999", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseHours(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidHours) {
				t.Errorf("ParseHours(%q) error = %v, want ErrInvalidHours", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHours(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHours(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"G1", []string{"G1"}},
		{"G1,G2", []string{"G1", "G2"}},
		{" G2 , G1 ,", []string{"G2", "G1"}},
		{",,", nil},
	}

	for _, tt := range tests {
		if got := ParseIDList(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("ParseIDList(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEventFields_Event(t *testing.T) {
	fields := EventFields{
		ID:           "EV1",
		Type:         "Wedding",
		Theme:        "Garden",
		Date:         "2026-06-01",
		Time:         "14:00",
		Duration:     "5",
		VenueAddress: "1 Main St",
		ClientID:     "C1",
		GuestIDs:     "G1, G2",
		SupplierIDs:  "S1",
		Invoice:      "INV-7",
	}

	ev, err := fields.Event()
	if err != nil {
		t.Fatalf("Event() returned error: %v", err)
	}
	if ev.Duration != 5 {
		t.Errorf("Duration = %v, want 5", ev.Duration)
	}
	if !slices.Equal(ev.GuestIDs, []string{"G1", "G2"}) {
		t.Errorf("GuestIDs = %q, want [G1 G2]", ev.GuestIDs)
	}
	if !slices.Equal(ev.SupplierIDs, []string{"S1"}) {
		t.Errorf("SupplierIDs = %q, want [S1]", ev.SupplierIDs)
	}
	if ev.ClientID != "C1" || ev.Invoice != "INV-7" || ev.VenueAddress != "1 Main St" {
		t.Errorf("unexpected event: %+v", ev)
	}

	fields.Duration = "long"
	if _, err := fields.Event(); !errors.Is(err, ErrInvalidHours) {
		t.Errorf("expected ErrInvalidHours, got %v", err)
	}
}

func TestCreateKeyMap(t *testing.T) {
	km := CreateKeyMap(config.DefaultKeyMappings())

	keys := km.Quit.Keys()
	if !slices.Contains(keys, "ctrl+c") || !slices.Contains(keys, "esc") {
		t.Errorf("quit keys = %q, want ctrl+c and esc", keys)
	}

	km = CreateKeyMap(config.KeyMappings{Quit: "q", Back: "q"})
	if keys := km.Quit.Keys(); !slices.Equal(keys, []string{"q"}) {
		t.Errorf("quit keys = %q, want [q]", keys)
	}
}

func TestMenusBuild(t *testing.T) {
	kind := models.KindEmployee
	if CreateKindMenu(&kind) == nil {
		t.Fatal("CreateKindMenu returned nil")
	}
	action := ActionAdd
	if CreateActionMenu(models.KindGuest, &action) == nil {
		t.Fatal("CreateActionMenu returned nil")
	}
	var fields EventFields
	if CreateEventForm(&fields) == nil {
		t.Fatal("CreateEventForm returned nil")
	}
	if CreateFeteTheme(config.Theme{}) == nil {
		t.Fatal("CreateFeteTheme returned nil")
	}
}
