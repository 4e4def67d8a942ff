package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML-backed settings. Single optional file; a missing file means defaults.

const (
	fileName = ".contactform.yaml"
	envPath  = "CONTACTFORM_CONFIG"

	DefaultCharLimit = 200
)

// Config holds the form's tunables.
type Config struct {
	Theme     string `yaml:"theme"`
	CharLimit int    `yaml:"char_limit"`
	Log       Log    `yaml:"log"`
}

// Log configures the zap logger. An empty File disables logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Theme:     "classic",
		CharLimit: DefaultCharLimit,
		Log:       Log{Level: "info"},
	}
}

// Path resolves the config file location: explicit path, then
// $CONTACTFORM_CONFIG, then $HOME/.contactform.yaml.
func Path(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv(envPath)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// Load reads the config at path over the defaults. A missing file is not an
// error unless the path was given explicitly.
func Load(explicit string) (Config, error) {
	cfg := Default()
	p, err := Path(explicit)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && explicit == "" {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", p, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", p, err)
	}
	return cfg, nil
}

// Validate rejects values the form cannot run with.
func (c Config) Validate() error {
	if c.CharLimit <= 0 {
		return fmt.Errorf("char_limit must be positive, got %d", c.CharLimit)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
