package theme

import "github.com/thenoetrevino/fete/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent    string
	Create    string
	Delete    string
	Title     string
	Subtle    string
	Normal    string
	InfoFg    string
	InfoBg    string
	WarningFg string
	WarningBg string
	ErrorFg   string
	ErrorBg   string
)

func init() {
	Init(config.DefaultTheme())
}

// Init sets the theme colors from the configured theme
func Init(t config.Theme) {
	t.ApplyDefaults()
	Accent = t.Accent
	Create = t.Create
	Delete = t.Delete
	Title = t.Title
	Subtle = t.Subtle
	Normal = t.Normal
	InfoFg = t.InfoFg
	InfoBg = t.InfoBg
	WarningFg = t.WarningFg
	WarningBg = t.WarningBg
	ErrorFg = t.ErrorFg
	ErrorBg = t.ErrorBg
}
