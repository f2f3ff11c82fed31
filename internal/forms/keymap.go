package forms

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/fete/internal/config"
)

// CreateKeyMap builds the form key map from the configured key mappings.
// Both the quit and back keys leave the form.
func CreateKeyMap(km config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	leave := bindingKeys(km.Quit, km.Back)
	keymap.Quit = key.NewBinding(
		key.WithKeys(leave...),
		key.WithHelp(strings.Join(leave, " / "), "leave"),
	)

	if km.Submit != "" {
		keymap.Input.Next = key.NewBinding(
			key.WithKeys(km.Submit, "tab"),
			key.WithHelp(km.Submit, "next"),
		)
		keymap.Select.Submit = key.NewBinding(
			key.WithKeys(km.Submit),
			key.WithHelp(km.Submit, "select"),
		)
		keymap.Confirm.Submit = key.NewBinding(
			key.WithKeys(km.Submit),
			key.WithHelp(km.Submit, "submit"),
		)
	}

	return keymap
}

// bindingKeys drops empty and repeated key names
func bindingKeys(names ...string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		keys = append(keys, n)
	}
	return keys
}
