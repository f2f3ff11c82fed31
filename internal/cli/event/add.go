package event

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
)

// AddCmd returns the event add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new event",
		Long: `Add an event under a new ID.

Examples:
  # Event with guests (human-readable output)
  fete event add --id=EV1 --type=Wedding --date=2026-06-01 \
    --duration=5 --client=C1 --guest=G1 --guest=G2

  # Guests and suppliers also accept comma-separated lists
  fete event add --id=EV2 --guest=G1,G2 --supplier=S1 --json

  # Fill in the fields with a form
  fete event add --interactive
`,
		RunE: runAdd,
	}

	cmd.Flags().String("id", "", "Event ID (required)")

	// Event details
	cmd.Flags().String("type", "", "Event type")
	cmd.Flags().String("theme", "", "Event theme")
	cmd.Flags().String("date", "", "Event date")
	cmd.Flags().String("time", "", "Event time")
	cmd.Flags().Float64("duration", 0, "Duration in hours")
	cmd.Flags().String("venue-address", "", "Venue address")
	cmd.Flags().String("client", "", "Client ID")
	cmd.Flags().StringSlice("guest", nil, "Guest ID (repeatable, order kept)")
	cmd.Flags().StringSlice("supplier", nil, "Supplier ID (repeatable, order kept)")
	cmd.Flags().String("invoice", "", "Invoice")

	cmd.Flags().BoolP("interactive", "i", false, "Fill in the fields with a form")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// eventFromFlags builds the event payload from the detail flags
func eventFromFlags(cmd *cobra.Command) models.Event {
	flags := cmd.Flags()
	var ev models.Event
	ev.Type, _ = flags.GetString("type")
	ev.Theme, _ = flags.GetString("theme")
	ev.Date, _ = flags.GetString("date")
	ev.Time, _ = flags.GetString("time")
	ev.Duration, _ = flags.GetFloat64("duration")
	ev.VenueAddress, _ = flags.GetString("venue-address")
	ev.ClientID, _ = flags.GetString("client")
	ev.GuestIDs, _ = flags.GetStringSlice("guest")
	ev.SupplierIDs, _ = flags.GetStringSlice("supplier")
	ev.Invoice, _ = flags.GetString("invoice")
	return ev
}

// formFields prefills the event form from the flags
func formFields(id string, ev models.Event) forms.EventFields {
	return forms.EventFields{
		ID:           id,
		Type:         ev.Type,
		Theme:        ev.Theme,
		Date:         ev.Date,
		Time:         ev.Time,
		Duration:     notify.FormatHours(ev.Duration),
		VenueAddress: ev.VenueAddress,
		ClientID:     ev.ClientID,
		GuestIDs:     strings.Join(ev.GuestIDs, ", "),
		SupplierIDs:  strings.Join(ev.SupplierIDs, ", "),
		Invoice:      ev.Invoice,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	interactive, _ := cmd.Flags().GetBool("interactive")
	ev := eventFromFlags(cmd)

	formatter := cli.FormatterFor(cmd)

	if !interactive && !cmd.Flags().Changed("id") {
		return formatter.UsageError("--id is required",
			"fete event add --id=EV1 --type=Wedding --guest=G1")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer cli.Release(cliInstance)

	if interactive {
		prompter := forms.NewPrompter(cliInstance.Config.Theme, cliInstance.Config.KeyMappings)
		id, ev, err = prompter.EventRecord(ctx, formFields(id, ev))
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
		if err != nil {
			return formatter.Fail(models.KindEvent, err)
		}
	}

	rec, err := cliInstance.App.RecordService.AddEvent(ctx, recordservice.AddEventRequest{
		ID:    id,
		Event: ev,
	})
	if err != nil {
		return formatter.Fail(models.KindEvent, err)
	}

	return formatter.Notify(notify.Added(models.KindEvent), rec)
}
