package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/fete/internal/models"
	"github.com/thenoetrevino/fete/internal/testutil"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("FETE_LOG_FILE", filepath.Join(home, "fete.log"))
	for _, name := range []string{"FETE_DATA_DIR", "FETE_BACKEND", "FETE_FORMAT", "FETE_THEME_FILE", "FETE_STRICT_REFERENCES"} {
		t.Setenv(name, "")
	}
	return home
}

func globalFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("data-dir", "", "")
	fs.String("backend", "", "")
	fs.String("format", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "elsewhere")

	cfg, err := LoadConfig(globalFlags(t, "--data-dir", dir, "--backend", "bolt", "--format", "json"))
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "bolt", cfg.Backend)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfig_UnsetFlagsKeepConfig(t *testing.T) {
	isolate(t)
	t.Setenv("FETE_BACKEND", "sqlite")

	cfg, err := LoadConfig(globalFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)

	cfg, err = LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	isolate(t)

	_, err := LoadConfig(globalFlags(t, "--format", "xml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid configuration"))
}

func TestNewCLI_OpensAndCloses(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "data")

	c, err := NewCLI(context.Background(), globalFlags(t, "--data-dir", dir, "--backend", "sqlite"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.App.Backend().Name())
	assert.NotNil(t, c.App.Metrics())
	require.NoError(t, c.Close())

	assert.FileExists(t, filepath.Join(dir, "fete.db"))
}

func TestGetCLIFromContext_UsesInjectedApp(t *testing.T) {
	a, _ := testutil.NewTestApp(t)

	c, err := GetCLIFromContext(WithApp(context.Background(), a), nil)
	require.NoError(t, err)
	assert.Same(t, a, c.App)

	// Closing must not release an app the caller owns
	require.NoError(t, c.Close())
	_, err = a.RecordService.Get(context.Background(), models.KindGuest, "G1")
	assert.Error(t, err)
	assert.Equal(t, 0, a.Count(models.KindGuest))
}

func TestAppFromContext(t *testing.T) {
	_, ok := AppFromContext(context.Background())
	assert.False(t, ok)

	a, _ := testutil.NewTestApp(t)
	got, ok := AppFromContext(WithApp(context.Background(), a))
	assert.True(t, ok)
	assert.Same(t, a, got)
}
