// Package config loads settings from TIDO_-prefixed environment
// variables and resolves the XDG data directory and file paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName is the application directory name.
	AppName = "tido"

	// TasksFile is the task snapshot filename used by the file backend.
	TasksFile = "tasks.json"

	envPrefix = "TIDO_"
)

// Backend names accepted by Config.Backend.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all settings. There are no CLI flags; the interactive
// loop is the only input channel, so everything comes from defaults and
// the environment.
type Config struct {
	// Backend selects the persistence variant: file, memory, or postgres.
	Backend string `koanf:"backend"`

	// DataDir is where the file backend and exports write.
	DataDir string `koanf:"data_dir"`

	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string `koanf:"postgres_dsn"`

	// LogLevel sets the minimum diagnostic log level.
	LogLevel string `koanf:"log_level"`
}

// defaults returns the default configuration values, overridable by
// TIDO_ environment variables.
func defaults() map[string]any {
	return map[string]any{
		"backend":      BackendFile,
		"data_dir":     DefaultDataDir(),
		"postgres_dsn": "",
		"log_level":    "info",
	}
}

// Load reads configuration: defaults first, then environment variables
// with the TIDO_ prefix (TIDO_BACKEND, TIDO_DATA_DIR, TIDO_POSTGRES_DSN,
// TIDO_LOG_LEVEL).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks backend selection and its requirements.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendMemory:
	case BackendPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return fmt.Errorf("backend %q requires TIDO_POSTGRES_DSN", c.Backend)
		}
	default:
		return fmt.Errorf("unknown backend %q (want file, memory, or postgres)", c.Backend)
	}
	return nil
}

// TasksPath returns the path of the task snapshot file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.DataDir, TasksFile)
}

// DefaultDataDir returns the per-user application data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}
