package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/cli/directory"
	"github.com/thenoetrevino/fete/internal/cli/event"
	"github.com/thenoetrevino/fete/internal/cli/serve"
	"github.com/thenoetrevino/fete/internal/cli/shell"
	"github.com/thenoetrevino/fete/internal/storage"
)

// NewRootCmd builds the fete command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fete",
		Short: "Fete - records for an event-management business",
		Long: `Fete keeps employees, clients, guests, suppliers, venues and events.

Every kind is a flat mapping from ID to record, saved in full after each change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the snapshots (overrides config)")
	rootCmd.PersistentFlags().String("backend", "", fmt.Sprintf("Storage backend %v (overrides config)", storage.Backends()))
	rootCmd.PersistentFlags().String("format", "", "Snapshot format: yaml or json (overrides config)")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, c.UsageString())
		return cli.WithStatus(cli.ExitUsage, err)
	})

	for _, c := range directory.Cmds() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(event.EventCmd())
	rootCmd.AddCommand(shell.ShellCmd())
	rootCmd.AddCommand(serve.ServeCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}
	if _, reported := err.(*cli.StatusError); !reported {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.StatusCode(err)
}
