package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds per-project settings stored in .confmark/config.json.
type Config struct {
	// InputPath is the default lint results file for `confmark format`
	// (empty means stdin).
	InputPath string `json:"input_path,omitempty"`

	// OutputPath is the default destination for generated markup
	// (empty means stdout).
	OutputPath string `json:"output_path,omitempty"`
}

const (
	configDir  = ".confmark"
	configFile = "config.json"
)

// Path returns the project config path relative to the working directory.
func Path() string {
	return filepath.Join(configDir, configFile)
}

// Exists reports whether a project config file is present.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the project configuration. A missing file is not an error and
// yields defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the configuration, creating the .confmark directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0644)
}
