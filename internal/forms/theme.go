package forms

import (
	"image/color"

	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/fete/internal/config"
)

// palette is the subset of theme colors the forms use
type palette struct {
	accent, ok, muted, text, bad, heading color.Color
}

func newPalette(c config.Theme) palette {
	c.ApplyDefaults()
	return palette{
		accent:  lipgloss.Color(c.Accent),
		ok:      lipgloss.Color(c.Create),
		muted:   lipgloss.Color(c.Subtle),
		text:    lipgloss.Color(c.Normal),
		bad:     lipgloss.Color(c.Delete),
		heading: lipgloss.Color(c.Title),
	}
}

// CreateFeteTheme styles record forms with the configured colors
func CreateFeteTheme(colors config.Theme) huh.Theme {
	p := newPalette(colors)
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(p.accent)
		f.Title = f.Title.Foreground(p.heading).Bold(true)
		f.Description = f.Description.Foreground(p.muted)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(p.bad)
		f.ErrorMessage = f.ErrorMessage.Foreground(p.bad)

		// kind and action menus
		f.SelectSelector = f.SelectSelector.Foreground(p.accent)
		f.SelectedOption = f.SelectedOption.Foreground(p.ok)
		f.UnselectedOption = f.UnselectedOption.Foreground(p.text)

		f.FocusedButton = f.FocusedButton.Foreground(p.text).Background(p.accent).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(p.text).Background(p.muted)

		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(p.accent)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(p.accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(p.muted)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = s.Blurred.Title.Foreground(p.muted)

		return s
	})
}
