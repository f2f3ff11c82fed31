package event

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/models"
)

// ShowCmd returns the event show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"display"},
		Short:   "Display event details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunShow(cmd, models.KindEvent)
		},
	}

	cmd.Flags().String("id", "", "Event ID (required)")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}
