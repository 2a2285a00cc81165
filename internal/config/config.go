// Copyright 2026 ShippedHQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for shipped with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. It's designed to work
// seamlessly with GitHub Enterprise deployments through a configurable
// GraphQL endpoint.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .shipped.yaml (current directory)
//   - .shipped.yml (current directory)
//   - ~/.shipped/config.yaml
//   - ~/.shipped/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".shipped.yaml",
			".shipped.yml",
			filepath.Join(os.Getenv("HOME"), ".shipped", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".shipped", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	// GitHub settings
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}
	if org := os.Getenv("SHIPPED_DEFAULT_ORG"); org != "" {
		cfg.GitHub.DefaultOrg = org
	}

	// Auth settings
	if binary := os.Getenv("SHIPPED_GH_BINARY"); binary != "" {
		cfg.Auth.GhBinary = binary
	}
	if tokenEnv := os.Getenv("SHIPPED_TOKEN_VAR"); tokenEnv != "" {
		cfg.Auth.TokenEnv = tokenEnv
	}

	// Defaults
	if limit := os.Getenv("SHIPPED_SEARCH_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			cfg.Defaults.SearchLimit = n
		}
	}
}

// Validate checks if the configuration contains valid values. It ensures
// the search limit is positive, endpoints are not empty, and other
// constraints are met. This should be called after loading configuration
// to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Defaults.SearchLimit <= 0 {
		return fmt.Errorf("default search limit must be positive, got: %d", c.Defaults.SearchLimit)
	}
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	if c.GitHub.DefaultOrg == "" {
		return fmt.Errorf("default organization cannot be empty")
	}
	if c.Auth.GhBinary == "" {
		return fmt.Errorf("gh binary name cannot be empty")
	}
	if c.Auth.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	return nil
}
