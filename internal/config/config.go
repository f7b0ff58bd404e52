package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration.
type Config struct {
	DB  DBConfig  `yaml:"db" mapstructure:"db"`
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// DBConfig locates the knowledge-base store.
type DBConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging. Logging is off unless Enabled is set.
type LogConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from an optional blueprint.yaml (in the working
// directory or ~/.blueprint) and BLUEPRINT_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("blueprint")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	home, homeErr := os.UserHomeDir()
	if homeErr == nil {
		v.AddConfigPath(filepath.Join(home, ".blueprint"))
	}

	v.SetEnvPrefix("BLUEPRINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db.path", defaultDBPath(home, homeErr))
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func defaultDBPath(home string, err error) string {
	if err != nil || home == "" {
		return "blueprint.db"
	}
	return filepath.Join(home, ".blueprint", "blueprint.db")
}

// NewLogger builds the slog logger described by cfg. A disabled config
// yields a logger that discards everything.
func NewLogger(cfg LogConfig, w io.Writer) (*slog.Logger, error) {
	if !cfg.Enabled || w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("config: parse log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("config: unknown log format %q (expected text or json)", cfg.Format)
	}
}
