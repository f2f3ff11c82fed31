// Package cli holds helpers for testing cobra commands against a test app.
// It lives apart from testutil so store and service tests can import
// testutil without pulling in the command packages.
package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/app"
	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/testutil"
)

// SetupCLITest creates a file-backed app in a temporary directory and
// returns it together with that directory
func SetupCLITest(t *testing.T, opts ...app.Option) (*app.App, string) {
	t.Helper()
	return testutil.NewTestApp(t, opts...)
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// The app travels in the command context so the command never opens storage itself.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	prepare(cmd, args)
	ctxWithApp := cli.WithApp(ctx, testApp)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
