// Package config loads the optional .advent.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color mode values for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultInputsDir is where day inputs are looked up when no path is given.
const DefaultInputsDir = "inputs"

// Config represents the .advent.yaml file.
type Config struct {
	// InputsDir holds the per-day input files (day1.txt, day2.txt, ...).
	InputsDir string `yaml:"inputs_dir"`
	// Color controls terminal colors: auto, always, or never.
	Color string `yaml:"color"`
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		InputsDir: DefaultInputsDir,
		Color:     ColorAuto,
	}
}

// Load reads .advent.yaml from the given base path. A missing file yields
// the defaults; missing fields are filled in with defaults.
func Load(basePath string) (*Config, error) {
	path := filepath.Join(basePath, ".advent.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	if cfg.InputsDir == "" {
		return ValidationError{Field: "inputs_dir", Message: "must not be empty"}
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ValidationError{Field: "color", Message: "must be auto, always, or never"}
	}
	return nil
}

// InputPath returns the default input file path for a puzzle day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputsDir, fmt.Sprintf("day%d.txt", day))
}
