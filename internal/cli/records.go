package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
)

// RunDelete removes the record named by the --id flag
func RunDelete(cmd *cobra.Command, kind models.Kind) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")

	formatter := FormatterFor(cmd)

	if !cmd.Flags().Changed("id") {
		return formatter.UsageError("--id is required",
			fmt.Sprintf("fete %s delete --id=X1", kind))
	}

	cliInstance, err := GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer Release(cliInstance)

	svc := cliInstance.App.RecordService

	// Ask for confirmation unless force, json or quiet mode
	if !force && !formatter.Quiet && !formatter.JSON {
		rec, err := svc.Get(ctx, kind, id)
		if err != nil {
			return formatter.Fail(kind, err)
		}
		prompt := fmt.Sprintf("Delete %s %s: '%s'?", kind, id, recordLabel(rec))
		if !Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := svc.Delete(ctx, kind, id); err != nil {
		return formatter.Fail(kind, err)
	}

	if formatter.Quiet {
		return nil
	}
	return formatter.Notify(notify.Deleted(kind), &models.Record{Kind: kind, ID: id})
}

// RunShow displays the record named by the --id flag
func RunShow(cmd *cobra.Command, kind models.Kind) error {
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	formatter := FormatterFor(cmd)

	if !cmd.Flags().Changed("id") {
		return formatter.UsageError("--id is required",
			fmt.Sprintf("fete %s show --id=X1", kind))
	}

	cliInstance, err := GetCLIFromContext(ctx, cmd.Flags())
	if err != nil {
		return formatter.InitError(err)
	}
	defer Release(cliInstance)

	rec, err := cliInstance.App.RecordService.Get(ctx, kind, id)
	if err != nil {
		return formatter.Fail(kind, err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(rec)
	}

	fmt.Println(RenderCard(rec))
	return nil
}

// recordLabel is the short description used in confirmation prompts
func recordLabel(rec *models.Record) string {
	if rec.Event != nil {
		return rec.Event.Type
	}
	return rec.Name
}
