package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/fete/internal/storage"
)

// Config represents the application configuration
type Config struct {
	DataDir          string         `yaml:"data_dir"`
	Backend          string         `yaml:"backend"`
	Format           string         `yaml:"format"`
	StrictReferences bool           `yaml:"strict_references"`
	PersistRetries   int            `yaml:"persist_retries"`
	Postgres         PostgresConfig `yaml:"postgres"`
	Redis            RedisConfig    `yaml:"redis"`
	S3               S3Config       `yaml:"s3"`
	Log              LogConfig      `yaml:"log"`
	HTTP             HTTPConfig     `yaml:"http"`
	KeyMappings      KeyMappings    `yaml:"key_mappings"`
	Theme            Theme          `yaml:"theme"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	URL    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
	File     string `yaml:"file"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the config file, then applies .env and FETE_* overrides.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load(".env")

	cfg := &Config{}
	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	loadThemeFile(cfg)
	cfg.applyEnv()

	// Fill in any missing values with defaults
	cfg.applyDefaults()

	return cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects settings that would fail later at open time
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(storage.Backends(), strings.ToLower(c.Backend)) {
		errs = append(errs, fmt.Errorf("backend %q is not one of: %s", c.Backend, strings.Join(storage.Backends(), ", ")))
	}
	if _, err := storage.CodecFor(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.PersistRetries < 1 {
		errs = append(errs, fmt.Errorf("persist_retries must be at least 1, got %d", c.PersistRetries))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		errs = append(errs, fmt.Errorf("log encoding %q must be json or console", c.Log.Encoding))
	}
	if strings.EqualFold(c.Backend, storage.BackendS3) && c.S3.Bucket == "" {
		errs = append(errs, errors.New("s3 backend requires s3.bucket"))
	}
	return errors.Join(errs...)
}

// StorageOptions builds backend options; ext comes from the selected codec
func (c *Config) StorageOptions(ext string) storage.Options {
	return storage.Options{
		Backend:     c.Backend,
		DataDir:     c.DataDir,
		Extension:   ext,
		PostgresDSN: c.Postgres.DSN,
		RedisURL:    c.Redis.URL,
		RedisPrefix: c.Redis.Prefix,
		S3: storage.S3Options{
			Bucket:    c.S3.Bucket,
			Region:    c.S3.Region,
			Endpoint:  c.S3.Endpoint,
			Prefix:    c.S3.Prefix,
			Extension: ext,
			PathStyle: c.S3.PathStyle,
		},
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "fete", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "fete", "config.yaml"), nil
}

// homeDirOr returns ~/.fete/<elem...>, or a relative .fete path without a home
func homeDirOr(elem ...string) string {
	base := ".fete"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".fete")
	}
	return filepath.Join(append([]string{base}, elem...)...)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = homeDirOr("data")
	}
	if c.Backend == "" {
		c.Backend = storage.BackendFile
	}
	if c.Format == "" {
		c.Format = storage.FormatYAML
	}
	if c.PersistRetries == 0 {
		c.PersistRetries = 3
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = "fete:"
	}
	if c.S3.Region == "" {
		c.S3.Region = "us-east-1"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = "json"
	}
	if c.Log.File == "" {
		c.Log.File = homeDirOr("logs", "fete.log")
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	c.KeyMappings.applyDefaults()
	c.Theme.ApplyDefaults()
}
