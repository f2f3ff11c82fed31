package cli

import (
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/testutil"
)

// ExecuteCommand runs cmd with args and returns what it wrote to stdout
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	prepare(cmd, args)

	var err error
	output := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return output, err
}

// ParseJSON decodes one JSON envelope printed by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output is not a JSON envelope: %v\n%s", err, output)
	}
	return result
}

// prepare silences cobra so only the command's own output is captured
func prepare(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
