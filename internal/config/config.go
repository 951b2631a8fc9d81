// Package config loads runner configuration from a YAML file with
// environment variable overrides and sensible defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runner configuration.
type Config struct {
	Simulation struct {
		Companies int   `yaml:"companies"`
		Humans    int   `yaml:"humans"`
		Quarters  int   `yaml:"quarters"`
		Seed      int64 `yaml:"seed"`
	} `yaml:"simulation"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then fills defaults. A missing file is not an error.
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
	if v := os.Getenv("TOPAZSIM_COMPANIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Companies = n
		}
	}
	if v := os.Getenv("TOPAZSIM_HUMANS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Humans = n
		}
	}
	if v := os.Getenv("TOPAZSIM_QUARTERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Quarters = n
		}
	}
	if v := os.Getenv("TOPAZSIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Simulation.Seed = n
		}
	}
	if v := os.Getenv("TOPAZSIM_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TOPAZSIM_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Simulation.Companies <= 0 {
		cfg.Simulation.Companies = 4
	}
	if cfg.Simulation.Humans < 0 {
		cfg.Simulation.Humans = 0
	}
	if cfg.Simulation.Quarters <= 0 {
		cfg.Simulation.Quarters = 8
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = 42
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "topazsim.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
