// Package config provides configuration loading for the bake CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults the CLI falls back to when flags are unset.
type Config struct {
	Debug  bool         `yaml:"debug"`
	Kernel string       `yaml:"kernel"`
	Theta  []float64    `yaml:"theta"`
	Dims   int          `yaml:"dims"`
	Output OutputConfig `yaml:"output"`
	Sweep  SweepConfig  `yaml:"sweep"`
}

// OutputConfig controls how matrices are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
}

// SweepConfig holds settings for evaluating several hyperparameter
// candidates at once.
type SweepConfig struct {
	// Workers bounds concurrent evaluations; 0 or less means no limit.
	Workers int `yaml:"workers"`
}

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(cfg)
	return cfg, nil
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := Config{
		Output: OutputConfig{Precision: 6},
		Sweep:  SweepConfig{Workers: 4},
	}
	ApplyDefaults(&cfg)
	return &cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
