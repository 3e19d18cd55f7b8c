// Copyright 2026 The Shopkeeper Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the config file.
const EnvVar = "SHOPKEEPER_CONFIG"

// Config is the master configuration for Shopkeeper.
type Config struct {
	// Paths configures the data file locations.
	Paths PathsConfig `yaml:"paths"`
}

// PathsConfig configures the data file locations.
type PathsConfig struct {
	// InventoryFile is the delimited inventory file. It is created on
	// first use if missing. Default: inventory.csv
	InventoryFile string `yaml:"inventory_file"`

	// SalesFile is the append-only sales ledger file. It is created on
	// the first recorded sale. Default: sales.csv
	SalesFile string `yaml:"sales_file"`
}

// Default returns a Config pointing both data files at the working
// directory.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			InventoryFile: "inventory.csv",
			SalesFile:     "sales.csv",
		},
	}
}

// Load reads the config file named by SHOPKEEPER_CONFIG. When the
// variable is unset, Load returns Default() — the tool must run with
// zero setup.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and parses the config file at path. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Paths.InventoryFile == "" || cfg.Paths.SalesFile == "" {
		return nil, fmt.Errorf("config file %s: paths must not be empty", path)
	}
	return cfg, nil
}
