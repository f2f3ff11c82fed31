package forms

import (
	"context"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/fete/internal/config"
	"github.com/thenoetrevino/fete/internal/models"
)

// Prompter runs the interactive forms in the terminal
type Prompter struct {
	theme  huh.Theme
	keymap *huh.KeyMap
}

// NewPrompter creates a prompter styled with the configured theme and keys
func NewPrompter(t config.Theme, km config.KeyMappings) *Prompter {
	return &Prompter{
		theme:  CreateFeteTheme(t),
		keymap: CreateKeyMap(km),
	}
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	return form.
		WithTheme(p.theme).
		WithKeyMap(p.keymap).
		WithShowHelp(true).
		RunWithContext(ctx)
}

// SelectKind shows the main menu. QuitKind means the user chose to quit.
func (p *Prompter) SelectKind(ctx context.Context) (models.Kind, error) {
	kind := models.KindEmployee
	if err := p.run(ctx, CreateKindMenu(&kind)); err != nil {
		return QuitKind, err
	}
	return kind, nil
}

// SelectAction shows the menu of operations for kind
func (p *Prompter) SelectAction(ctx context.Context, kind models.Kind) (Action, error) {
	action := ActionAdd
	if err := p.run(ctx, CreateActionMenu(kind, &action)); err != nil {
		return ActionBack, err
	}
	return action, nil
}

// RecordID asks for the ID of the record to delete or display
func (p *Prompter) RecordID(ctx context.Context, kind models.Kind, verb string) (string, error) {
	var id string
	err := p.run(ctx, CreateIDForm(kind, verb, &id))
	return id, err
}

// NameRecord collects the ID and name of a new name-keyed record,
// starting from the given values
func (p *Prompter) NameRecord(ctx context.Context, kind models.Kind, id, name string) (string, string, error) {
	err := p.run(ctx, CreateNameRecordForm(kind, &id, &name))
	return id, name, err
}

// EventRecord collects the ID and details of a new event, starting from fields
func (p *Prompter) EventRecord(ctx context.Context, fields EventFields) (string, models.Event, error) {
	if err := p.run(ctx, CreateEventForm(&fields)); err != nil {
		return "", models.Event{}, err
	}
	ev, err := fields.Event()
	return fields.ID, ev, err
}
