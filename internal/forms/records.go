package forms

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/fete/internal/models"
)

// EventFields holds the raw text typed into the event form
type EventFields struct {
	ID           string
	Type         string
	Theme        string
	Date         string
	Time         string
	Duration     string
	VenueAddress string
	ClientID     string
	GuestIDs     string
	SupplierIDs  string
	Invoice      string
}

// CreateIDForm creates a form asking only for a record ID
func CreateIDForm(kind models.Kind, verb string, id *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("id").
			Title(fmt.Sprintf("%s %s", verb, kind.Title())).
			Description(kind.Title() + " ID").
			Value(id),
	))
}

// CreateNameRecordForm creates a form for adding a name-keyed record
func CreateNameRecordForm(kind models.Kind, id, name *string) *huh.Form {
	title := kind.Title()
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("id").
			Title(title+" ID").
			Placeholder("Enter "+string(kind)+" ID...").
			Value(id),

		huh.NewInput().
			Key("name").
			Title("Name").
			Placeholder("Enter name...").
			Value(name),
	))
}

// CreateEventForm creates a form for adding an event.
// Guest and supplier IDs are typed as comma-separated lists.
func CreateEventForm(f *EventFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("id").Title("Event ID").Value(&f.ID),
			huh.NewInput().Key("type").Title("Type").Value(&f.Type),
			huh.NewInput().Key("theme").Title("Theme").Value(&f.Theme),
			huh.NewInput().Key("date").Title("Date").Value(&f.Date),
			huh.NewInput().Key("time").Title("Time").Value(&f.Time),
			huh.NewInput().
				Key("duration").
				Title("Duration").
				Description("Hours, e.g. 2.5").
				Validate(ValidateHours).
				Value(&f.Duration),
		),
		huh.NewGroup(
			huh.NewInput().Key("venue_address").Title("Venue Address").Value(&f.VenueAddress),
			huh.NewInput().Key("client_id").Title("Client ID").Value(&f.ClientID),
			huh.NewInput().
				Key("guest_ids").
				Title("Guest IDs").
				Description("Comma-separated").
				Value(&f.GuestIDs),
			huh.NewInput().
				Key("supplier_ids").
				Title("Supplier IDs").
				Description("Comma-separated").
				Value(&f.SupplierIDs),
			huh.NewInput().Key("invoice").Title("Invoice").Value(&f.Invoice),
		),
	)
}

// ErrInvalidHours is returned for a duration that is not a finite number
var ErrInvalidHours = errors.New("duration must be a finite number of hours")

// ValidateHours accepts an empty string or a number of hours
func ValidateHours(s string) error {
	_, err := ParseHours(s)
	return err
}

// ParseHours parses a duration in hours; blank means zero
func ParseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, ErrInvalidHours
	}
	return h, nil
}

// ParseIDList splits a comma-separated list of IDs, keeping their order and
// dropping blank entries
func ParseIDList(s string) []string {
	var ids []string
	for part := range strings.SplitSeq(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Event converts the typed fields into an event payload
func (f EventFields) Event() (models.Event, error) {
	hours, err := ParseHours(f.Duration)
	if err != nil {
		return models.Event{}, err
	}
	return models.Event{
		Type:         f.Type,
		Theme:        f.Theme,
		Date:         f.Date,
		Time:         f.Time,
		Duration:     hours,
		VenueAddress: f.VenueAddress,
		ClientID:     f.ClientID,
		GuestIDs:     ParseIDList(f.GuestIDs),
		SupplierIDs:  ParseIDList(f.SupplierIDs),
		Invoice:      f.Invoice,
	}, nil
}
