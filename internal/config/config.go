// Package config provides configuration management.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"powercost/internal/errors"
	"powercost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`

	// RatesFile is an optional path to an HCL rate schedule
	RatesFile string `yaml:"rates_file,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `yaml:"default_format"`

	// ShowAccountInfo includes the account metadata block in text output
	ShowAccountInfo bool `yaml:"show_account_info"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat:   "text",
			ShowAccountInfo: true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "reading config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "parsing config file", err)
	}

	return cfg, nil
}

var current = Default()

// Get returns the current configuration
func Get() *Config {
	return current
}

// Set replaces the current configuration
func Set(cfg *Config) {
	if cfg != nil {
		current = cfg
	}
}
