// Package shell runs the interactive form loop over the record service
//
// e.g., fete shell
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/fete/internal/forms"
	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/notify"
	recordservice "github.com/thenoetrevino/fete/internal/services/record"
)

// Prompter collects choices and field values from the user.
// An aborted form returns huh.ErrUserAborted.
type Prompter interface {
	SelectKind(ctx context.Context) (models.Kind, error)
	SelectAction(ctx context.Context, kind models.Kind) (forms.Action, error)
	RecordID(ctx context.Context, kind models.Kind, verb string) (string, error)
	NameRecord(ctx context.Context, kind models.Kind, id, name string) (string, string, error)
	EventRecord(ctx context.Context, fields forms.EventFields) (string, models.Event, error)
}

// Shell loops over the kind and action menus until the user quits
type Shell struct {
	svc    recordservice.Service
	prompt Prompter
	out    io.Writer
}

// New creates a shell that prints notifications to out
func New(svc recordservice.Service, prompt Prompter, out io.Writer) *Shell {
	return &Shell{svc: svc, prompt: prompt, out: out}
}

// Run shows the main menu until the user quits or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		kind, err := s.prompt.SelectKind(ctx)
		if aborted(err) || (err == nil && kind == forms.QuitKind) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("main menu: %w", err)
		}

		if err := s.runKind(ctx, kind); err != nil {
			return err
		}
	}
}

// runKind shows the action menu for kind until the user goes back
func (s *Shell) runKind(ctx context.Context, kind models.Kind) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		action, err := s.prompt.SelectAction(ctx, kind)
		if aborted(err) || (err == nil && action == forms.ActionBack) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s menu: %w", kind, err)
		}

		n, ok, err := s.Perform(ctx, kind, action)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(s.out, notify.RenderInline(n))
		}
	}
}

// Perform collects the fields for one action and runs it. ok is false when
// the user left the form without submitting; err is set only when a form
// itself fails.
func (s *Shell) Perform(ctx context.Context, kind models.Kind, action forms.Action) (n notify.Notification, ok bool, err error) {
	switch action {
	case forms.ActionAdd:
		return s.add(ctx, kind)

	case forms.ActionDelete:
		id, err := s.prompt.RecordID(ctx, kind, "Delete")
		if aborted(err) {
			return n, false, nil
		}
		if err != nil {
			return n, false, err
		}
		if err := s.svc.Delete(ctx, kind, id); err != nil {
			return notify.Failed(kind, err), true, nil
		}
		return notify.Deleted(kind), true, nil

	case forms.ActionDisplay:
		id, err := s.prompt.RecordID(ctx, kind, "Display")
		if aborted(err) {
			return n, false, nil
		}
		if err != nil {
			return n, false, err
		}
		rec, err := s.svc.Get(ctx, kind, id)
		if err != nil {
			return notify.Failed(kind, err), true, nil
		}
		return notify.Details(rec), true, nil

	default:
		return n, false, nil
	}
}

func (s *Shell) add(ctx context.Context, kind models.Kind) (notify.Notification, bool, error) {
	var err error
	if kind == models.KindEvent {
		var id string
		var ev models.Event
		id, ev, err = s.prompt.EventRecord(ctx, forms.EventFields{})
		if err == nil {
			_, err = s.svc.AddEvent(ctx, recordservice.AddEventRequest{ID: id, Event: ev})
			return outcome(kind, err)
		}
	} else {
		var id, name string
		id, name, err = s.prompt.NameRecord(ctx, kind, "", "")
		if err == nil {
			_, err = s.svc.Add(ctx, recordservice.AddRequest{Kind: kind, ID: id, Name: name})
			return outcome(kind, err)
		}
	}

	switch {
	case aborted(err):
		return notify.Notification{}, false, nil
	case errors.Is(err, forms.ErrInvalidHours):
		return notify.Failed(kind, err), true, nil
	default:
		return notify.Notification{}, false, err
	}
}

func outcome(kind models.Kind, err error) (notify.Notification, bool, error) {
	if err != nil {
		return notify.Failed(kind, err), true, nil
	}
	return notify.Added(kind), true, nil
}

func aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
