package event

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/models"
)

// DeleteCmd returns the event delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an event",
		Long:  "Delete an event by ID (requires confirmation unless --force, --json or --quiet).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunDelete(cmd, models.KindEvent)
		},
	}

	cmd.Flags().String("id", "", "Event ID (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}
