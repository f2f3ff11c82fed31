package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "theme.yaml")
	content := []byte("theme:\n  accent: \"#FF0000\"\n  create: \"#00FF00\"\n")
	if err := os.WriteFile(themeFile, content, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("FETE_THEME_FILE", themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Theme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.Theme.Accent)
	}
	if cfg.Theme.Create != "#00FF00" {
		t.Errorf("Expected create to be #00FF00, got %s", cfg.Theme.Create)
	}
	if cfg.Theme.Delete != DefaultTheme().Delete {
		t.Errorf("Expected default delete color, got %s", cfg.Theme.Delete)
	}
}

func TestPresetApplyDefaults(t *testing.T) {
	theme := Theme{Preset: "monochrome", Accent: "#123456"}
	theme.ApplyDefaults()

	if theme.Accent != "#123456" {
		t.Errorf("Custom accent overwritten: %s", theme.Accent)
	}
	if theme.InfoBg != MonochromeTheme().InfoBg {
		t.Errorf("Expected monochrome info background, got %s", theme.InfoBg)
	}
}

func TestUnknownPresetFallsBackToDefault(t *testing.T) {
	theme := Theme{Preset: "neon"}
	theme.ApplyDefaults()
	if theme.Accent != DefaultTheme().Accent {
		t.Errorf("Expected default accent, got %s", theme.Accent)
	}
}
