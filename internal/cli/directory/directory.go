// Package directory holds the cli commands for the name-keyed kinds
//
// e.g., fete employee ..., fete guest ...
package directory

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/fete/internal/models"
)

// KindCmd returns the parent command for one name-keyed kind
func KindCmd(kind models.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(kind),
		Aliases: []string{kind.Plural()},
		Short:   fmt.Sprintf("Manage %s", kind.Plural()),
	}

	cmd.AddCommand(AddCmd(kind))
	cmd.AddCommand(DeleteCmd(kind))
	cmd.AddCommand(ShowCmd(kind))

	return cmd
}

// Cmds returns one parent command per name-keyed kind
func Cmds() []*cobra.Command {
	kinds := models.NameKinds()
	cmds := make([]*cobra.Command, 0, len(kinds))
	for _, kind := range kinds {
		cmds = append(cmds, KindCmd(kind))
	}
	return cmds
}
