package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/models"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
	testutilcli "github.com/thenoetrevino/fete/internal/testutil/cli"
)

func TestAddEventCommand(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t)

	output, err := testutilcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
		"--id", "EV1",
		"--type", "Wedding",
		"--theme", "Garden",
		"--date", "2026-06-01",
		"--time", "14:00",
		"--duration", "5.5",
		"--venue-address", "1 Main St",
		"--client", "C1",
		"--guest", "G2",
		"--guest", "G1",
		"--supplier", "S1,S2",
		"--invoice", "INV-7",
		"--json",
	})
	require.NoError(t, err, output)

	result := testutilcli.ParseJSON(t, output)
	assert.Equal(t, "Event added successfully.", result["message"])

	rec, err := testApp.RecordService.Get(context.Background(), models.KindEvent, "EV1")
	require.NoError(t, err)
	require.NotNil(t, rec.Event)
	assert.Equal(t, "Wedding", rec.Event.Type)
	assert.Equal(t, "Garden", rec.Event.Theme)
	assert.Equal(t, 5.5, rec.Event.Duration)
	assert.Equal(t, "1 Main St", rec.Event.VenueAddress)
	assert.Equal(t, "C1", rec.Event.ClientID)
	assert.Equal(t, []string{"G2", "G1"}, rec.Event.GuestIDs)
	assert.Equal(t, []string{"S1", "S2"}, rec.Event.SupplierIDs)
	assert.Equal(t, "INV-7", rec.Event.Invoice)
}

func TestAddEventDuplicate(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t)

	_, err := testutilcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--id", "EV1", "--type", "Gala", "--quiet"})
	require.NoError(t, err)

	output, err := testutilcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{"--id", "EV1", "--type", "Party", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.StatusCode(err))
	errData := testutilcli.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "Event with ID already exists.", errData["message"])

	rec, err := testApp.RecordService.Get(context.Background(), models.KindEvent, "EV1")
	require.NoError(t, err)
	assert.Equal(t, "Gala", rec.Event.Type)
}

func TestAddEventUnknownReference(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t, app.WithStrictReferences(true))

	output, err := testutilcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
		"--id", "EV1", "--guest", "G9", "--json",
	})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.StatusCode(err))
	errData := testutilcli.ParseJSON(t, output)["error"].(map[string]any)
	assert.Equal(t, "UNKNOWN_REFERENCE", errData["code"])
	assert.Equal(t, 0, testApp.Count(models.KindEvent))
}

func TestAddEventNonFiniteDuration(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t)

	for _, d := range []string{"NaN", "Inf", "-Inf"} {
		output, err := testutilcli.ExecuteCLICommand(t, testApp, AddCmd(), []string{
			"--id", "EV1", "--duration=" + d, "--json",
		})
		require.Error(t, err, d)
		assert.Equal(t, cli.ExitValidation, cli.StatusCode(err), d)

		errData := testutilcli.ParseJSON(t, output)["error"].(map[string]any)
		assert.Equal(t, "INVALID_VALUE", errData["code"], d)
		assert.Equal(t, "Event duration must be a finite number.", errData["message"], d)
	}
	assert.Equal(t, 0, testApp.Count(models.KindEvent))
}

func TestShowEventCommand(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t)

	_, err := testApp.RecordService.AddEvent(context.Background(), recordservice.AddEventRequest{
		ID: "EV1",
		Event: models.Event{
			Type:     "Conference",
			Duration: 8,
			GuestIDs: []string{"G1", "G2"},
		},
	})
	require.NoError(t, err)

	t.Run("json keeps guest order", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", "EV1", "--json"})
		require.NoError(t, err)
		data := testutilcli.ParseJSON(t, output)["data"].(map[string]any)
		ev := data["event"].(map[string]any)
		assert.Equal(t, "Conference", ev["type"])
		assert.Equal(t, []any{"G1", "G2"}, ev["guest_ids"])
	})

	t.Run("human card", func(t *testing.T) {
		output, err := testutilcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", "EV1"})
		require.NoError(t, err)
		assert.Contains(t, output, "Event Details")
		assert.Contains(t, output, "Conference")
		assert.Contains(t, output, "G1, G2")
	})

	t.Run("missing event", func(t *testing.T) {
		_, err := testutilcli.ExecuteCLICommand(t, testApp, ShowCmd(), []string{"--id", "EV9", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.StatusCode(err))
	})
}

func TestDeleteEventCommand(t *testing.T) {
	testApp, _ := testutilcli.SetupCLITest(t)

	_, err := testApp.RecordService.AddEvent(context.Background(), recordservice.AddEventRequest{ID: "EV1"})
	require.NoError(t, err)

	output, err := testutilcli.ExecuteCLICommand(t, testApp, DeleteCmd(), []string{"--id", "EV1", "--json"})
	require.NoError(t, err, output)
	assert.Equal(t, "Event deleted successfully.", testutilcli.ParseJSON(t, output)["message"])
	assert.Equal(t, 0, testApp.Count(models.KindEvent))
}

func TestEventCmdTree(t *testing.T) {
	cmd := EventCmd()
	for _, sub := range []string{"add", "delete", "show", "display"} {
		found, _, err := cmd.Find([]string{sub})
		require.NoError(t, err)
		assert.NotEqual(t, cmd, found, "subcommand %q not registered", sub)
	}
}
