package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Theme defines the colors used by CLI output and interactive forms
type Theme struct {
	// Preset name ("default", "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Create string `yaml:"create"`
	Delete string `yaml:"delete"`
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultTheme returns the purple default theme
func DefaultTheme() Theme {
	return Theme{
		Preset:    "default",
		Accent:    "#874BFD",
		Create:    "#5FD75F",
		Delete:    "#FF0000",
		Title:     "#D75FD7",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Create:    "#FFFFFF",
		Delete:    "#FFFFFF",
		Title:     "#FFFFFF",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}

// PresetTheme returns a preset by name, falling back to the default
func PresetTheme(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills empty colors from the preset
func (t *Theme) ApplyDefaults() {
	preset := PresetTheme(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.Create, preset.Create)
	fill(&t.Delete, preset.Delete)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.InfoFg, preset.InfoFg)
	fill(&t.InfoBg, preset.InfoBg)
	fill(&t.WarningFg, preset.WarningFg)
	fill(&t.WarningBg, preset.WarningBg)
	fill(&t.ErrorFg, preset.ErrorFg)
	fill(&t.ErrorBg, preset.ErrorBg)
}

// MergeFrom copies every non-empty color of other into t
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&t.Preset, other.Preset)
	merge(&t.Accent, other.Accent)
	merge(&t.Create, other.Create)
	merge(&t.Delete, other.Delete)
	merge(&t.Title, other.Title)
	merge(&t.Subtle, other.Subtle)
	merge(&t.Normal, other.Normal)
	merge(&t.InfoFg, other.InfoFg)
	merge(&t.InfoBg, other.InfoBg)
	merge(&t.WarningFg, other.WarningFg)
	merge(&t.WarningBg, other.WarningBg)
	merge(&t.ErrorFg, other.ErrorFg)
	merge(&t.ErrorBg, other.ErrorBg)
}

// loadThemeFile merges the theme from FETE_THEME_FILE, if set and readable
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv("FETE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		cfg.Theme.MergeFrom(themeConfig.Theme)
	}
}
