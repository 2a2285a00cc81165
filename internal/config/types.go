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

// Package config types define the configuration structures used throughout
// shipped. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for shipped.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	GitHub   GitHubConfig   `yaml:"github"`
	Auth     AuthConfig     `yaml:"auth"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// GitHubConfig contains GitHub-specific settings including the GraphQL
// endpoint and the default organization searched when none is given on the
// command line. Custom endpoints allow GitHub Enterprise deployments.
type GitHubConfig struct {
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	DefaultOrg      string `yaml:"default_org"`
}

// AuthConfig controls how credentials are resolved. GhBinary names the
// GitHub CLI executable used for cached-token lookup, and TokenEnv names
// the environment variable consulted when the CLI is unavailable.
type AuthConfig struct {
	GhBinary string `yaml:"gh_binary"`
	TokenEnv string `yaml:"token_env"`
}

// DefaultsConfig contains default settings that apply to all fetch
// operations unless overridden by command-line flags.
type DefaultsConfig struct {
	SearchLimit  int    `yaml:"search_limit"`
	OutputFormat string `yaml:"output_format"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults are optimized for public GitHub.com usage but
// can be overridden for GitHub Enterprise or special requirements.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			GraphQLEndpoint: "https://api.github.com/graphql",
			DefaultOrg:      "shippedhq",
		},
		Auth: AuthConfig{
			GhBinary: "gh",
			TokenEnv: "GITHUB_TOKEN",
		},
		Defaults: DefaultsConfig{
			SearchLimit:  100,
			OutputFormat: "ndjson",
		},
	}
}
