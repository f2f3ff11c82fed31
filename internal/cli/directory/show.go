package directory

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/models"
)

// ShowCmd returns the show subcommand for kind
func ShowCmd(kind models.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"display"},
		Short:   fmt.Sprintf("Display %s details", kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunShow(cmd, kind)
		},
	}

	cmd.Flags().String("id", "", fmt.Sprintf("%s ID (required)", kind.Title()))

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}
