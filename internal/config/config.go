// Package config loads CLI configuration from an optional TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all termsink CLI configuration.
type Config struct {
	Theme     string `toml:"theme"`      // built-in theme name, or "auto"/"none"
	ThemeFile string `toml:"theme_file"` // path to a YAML theme definition
	Template  string `toml:"template"`   // output template; empty means default
	MinLevel  string `toml:"min_level"`  // minimum level name; empty means verbose
}

// Load reads configuration from the TOML file at path (skipped when path is
// empty or the file does not exist), then applies TERMSINK_* environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Config{Theme: "auto"}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// Missing config file is fine; defaults apply.
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.Theme = getenv("TERMSINK_THEME", cfg.Theme)
	cfg.ThemeFile = getenv("TERMSINK_THEME_FILE", cfg.ThemeFile)
	cfg.Template = getenv("TERMSINK_TEMPLATE", cfg.Template)
	cfg.MinLevel = getenv("TERMSINK_MIN_LEVEL", cfg.MinLevel)
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
