package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store backends understood by the CLI.
const (
	StoreMemory = "memory"
	StoreKuzu   = "kuzu"
)

// Config holds settings loaded from royalties.yml.
type Config struct {
	Store    string `yaml:"store,omitempty"`
	LogLevel string `yaml:"logLevel,omitempty"`
	Verbose  bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read royalties.yml or royalties.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"royalties.yml", "royalties.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// Validate checks fields that have a fixed set of values.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreMemory, StoreKuzu:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// StoreOrDefault returns the configured store backend, or memory.
func (c *Config) StoreOrDefault() string {
	if c.Store == "" {
		return StoreMemory
	}
	return c.Store
}
