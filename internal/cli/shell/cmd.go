package shell

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thenoetrevino/fete/internal/cli"
	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
)

// ShellCmd returns the interactive shell command
func ShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Manage records through interactive forms",
		Long: `Load every record kind and pick operations from menus.

Press esc or ctrl+c to leave a form.`,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := &cli.OutputFormatter{}

	cliInstance, err := cli.GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer cli.Release(cliInstance)

	fields := make([]zap.Field, 0, len(models.Kinds()))
	for _, kind := range models.Kinds() {
		fields = append(fields, zap.Int(kind.Plural(), cliInstance.App.Count(kind)))
	}
	cliInstance.Logger().Info("shell started", fields...)

	prompter := forms.NewPrompter(cliInstance.Config.Theme, cliInstance.Config.KeyMappings)
	return New(cliInstance.App.RecordService, prompter, cmd.OutOrStdout()).Run(ctx)
}
