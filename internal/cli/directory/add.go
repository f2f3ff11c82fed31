package directory

import (
	"errors"
	"fmt"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
)

// AddCmd returns the add subcommand for kind
func AddCmd(kind models.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a new %s", kind),
		Long: fmt.Sprintf(`Add a %[1]s under a new ID.

Examples:
  # Simple add (human-readable output)
  fete %[1]s add --id=X1 --name="Alice"

  # JSON output for agents
  fete %[1]s add --id=X1 --name="Alice" --json

  # Fill in the fields with a form
  fete %[1]s add --interactive
`, kind),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, kind)
		},
	}

	cmd.Flags().String("id", "", fmt.Sprintf("%s ID (required)", kind.Title()))
	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().BoolP("interactive", "i", false, "Fill in the fields with a form")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, kind models.Kind) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	name, _ := cmd.Flags().GetString("name")
	interactive, _ := cmd.Flags().GetBool("interactive")

	formatter := cli.FormatterFor(cmd)

	if !interactive && !cmd.Flags().Changed("id") {
		return formatter.UsageError("--id is required",
			fmt.Sprintf("fete %s add --id=X1 --name=\"Alice\"", kind))
	}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer cli.Release(cliInstance)

	if interactive {
		prompter := forms.NewPrompter(cliInstance.Config.Theme, cliInstance.Config.KeyMappings)
		id, name, err = prompter.NameRecord(ctx, kind, id, name)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
		if err != nil {
			return formatter.Fail(kind, err)
		}
	}

	rec, err := cliInstance.App.RecordService.Add(ctx, recordservice.AddRequest{
		Kind: kind,
		ID:   id,
		Name: name,
	})
	if err != nil {
		return formatter.Fail(kind, err)
	}

	return formatter.Notify(notify.Added(kind), rec)
}
