// Package event holds all cli commands related to events
//
// e.g., fete event ...
package event

import (
	"github.com/spf13/cobra"
)

// EventCmd returns the event parent command
func EventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Manage events",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
