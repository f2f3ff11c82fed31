package forms

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/fete/internal/models"
)

// Action is an operation picked from a kind's menu
type Action string

const (
	ActionAdd     Action = "add"
	ActionDelete  Action = "delete"
	ActionDisplay Action = "display"
	ActionBack    Action = "back"
)

// QuitKind is the kind menu value that ends the shell
const QuitKind models.Kind = ""

// CreateKindMenu creates the main menu listing every kind plus quit
func CreateKindMenu(kind *models.Kind) *huh.Form {
	options := make([]huh.Option[models.Kind], 0, len(models.Kinds())+1)
	for _, k := range models.Kinds() {
		options = append(options, huh.NewOption(k.Title()+"s", k))
	}
	options = append(options, huh.NewOption("Quit", QuitKind))

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[models.Kind]().
			Key("kind").
			Title("Event Management").
			Description("Pick the records to work with").
			Options(options...).
			Value(kind),
	))
}

// CreateActionMenu creates the per-kind menu of add, delete and display
func CreateActionMenu(kind models.Kind, action *Action) *huh.Form {
	title := kind.Title()
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[Action]().
			Key("action").
			Title(title + "s").
			Options(
				huh.NewOption("Add "+title, ActionAdd),
				huh.NewOption("Delete "+title, ActionDelete),
				huh.NewOption("Display "+title+" Details", ActionDisplay),
				huh.NewOption("Back", ActionBack),
			).
			Value(action),
	))
}
