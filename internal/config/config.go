package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		Pattern string `yaml:"pattern"`
	} `yaml:"input"`
	Analysis struct {
		MomentumWindow int `yaml:"momentum_window"`
		ZoneCount      int `yaml:"zone_count"`
	} `yaml:"analysis"`
	Output struct {
		Format string `yaml:"format"` // "text" or "json"
	} `yaml:"output"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; the defaults
// stand on their own.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ANALYSER_PATTERN"); v != "" {
		cfg.Input.Pattern = v
	}
	if v := os.Getenv("ANALYSER_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.MomentumWindow = n
		}
	}
	if v := os.Getenv("ANALYSER_ZONES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.ZoneCount = n
		}
	}
	if v := os.Getenv("ANALYSER_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("ANALYSER_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Input.Pattern == "" {
		cfg.Input.Pattern = "data/*.csv"
	}
	if cfg.Analysis.MomentumWindow == 0 {
		cfg.Analysis.MomentumWindow = 10
	}
	if cfg.Analysis.ZoneCount == 0 {
		cfg.Analysis.ZoneCount = 10
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 */5 * * * *"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Analysis.MomentumWindow <= 0 {
		return fmt.Errorf("analysis.momentum_window must be positive")
	}
	if c.Analysis.ZoneCount <= 0 {
		return fmt.Errorf("analysis.zone_count must be positive")
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}
	return nil
}
