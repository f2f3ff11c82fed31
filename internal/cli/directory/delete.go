package directory

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/models"
)

// DeleteCmd returns the delete subcommand for kind
func DeleteCmd(kind models.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: fmt.Sprintf("Delete a %s", kind),
		Long: fmt.Sprintf("Delete a %s by ID (requires confirmation unless --force, --json or --quiet).",
			kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunDelete(cmd, kind)
		},
	}

	cmd.Flags().String("id", "", fmt.Sprintf("%s ID (required)", kind.Title()))
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}
