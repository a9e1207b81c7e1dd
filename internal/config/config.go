package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Color modes for listing output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the cmsg configuration.
//
// The prohibited word rules are deliberately not configurable: downstream
// hook runners depend on the fixed rule set and its diagnostics.
type Config struct {
	Color string `toml:"color" json:"color"` // "auto", "always", or "never"
}

// Default returns the default configuration.
func Default() Config {
	return Config{Color: ColorAuto}
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the default config if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cmsg", "config.toml"), nil
}

// Load reads config from ~/.cmsg/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if cfg.Color != ColorAuto && cfg.Color != ColorAlways && cfg.Color != ColorNever {
		return Default(), fmt.Errorf("invalid color %q: must be %q, %q, or %q", cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}

	return cfg, nil
}

// DefaultText returns the commented default config file content.
func DefaultText() string {
	return `# cmsg configuration
# Config location: ~/.cmsg/config.toml

# Color mode for 'cmsg rules' output
# "auto" = color only when stdout is a terminal (default)
# color = "auto"   # auto, always, never
`
}

// Init creates a default config file at ~/.cmsg/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return initAt(path, force)
}

func initAt(path string, force bool) (string, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(DefaultText()), 0644); err != nil {
		return "", err
	}

	return path, nil
}
