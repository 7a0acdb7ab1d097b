// Copyright 2026 The Hoistline Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hoistline/elbshift/elbops"
)

// Config is the master configuration for elbshift.
type Config struct {
	// Environment selects which override section applies and which
	// script IDs operations resolve to. The --env flag overrides it.
	Environment elbops.Environment `yaml:"environment"`

	// API configures the RightScale endpoint.
	API APIConfig `yaml:"api"`

	// Poll configures the task polling loop.
	Poll PollConfig `yaml:"poll"`

	// Scripts configures the script ID registry.
	Scripts ScriptsConfig `yaml:"scripts"`

	// Per-environment overrides, applied after the base config is
	// loaded.
	StagingOverrides *Overrides `yaml:"staging,omitempty"`
	ProdOverrides    *Overrides `yaml:"prod,omitempty"`

	// scriptTable caches the merged registry so Validate and the
	// runner read the registry file at most once.
	scriptTable elbops.ScriptTable
}

// Overrides contains the fields that can be overridden per environment.
type Overrides struct {
	API  *APIConfig  `yaml:"api,omitempty"`
	Poll *PollConfig `yaml:"poll,omitempty"`
}

// APIConfig configures the RightScale API endpoint.
type APIConfig struct {
	// URL is the base API endpoint, for example
	// https://us-3.rightscale.com.
	URL string `yaml:"url"`

	// Version is the value sent in the X-API-Version header.
	// Default: 1.5
	Version string `yaml:"version"`

	// OAuth2URL is the token endpoint. Empty means <url>/api/oauth2.
	OAuth2URL string `yaml:"oauth2_url"`
}

// PollConfig configures the bounded polling loop that waits for
// triggered tasks.
type PollConfig struct {
	// Interval is the sleep between polling rounds, in Go duration
	// syntax. Default: 1m
	Interval string `yaml:"interval"`

	// Rounds is the hard ceiling on polling rounds. A task still
	// pending when the counter reaches this value times the run out.
	// Default: 20
	Rounds int `yaml:"rounds"`
}

// ScriptsConfig configures where script IDs come from.
type ScriptsConfig struct {
	// RegistryFile is an optional JSONC file whose entries override
	// the embedded script table. Empty means embedded defaults only.
	RegistryFile string `yaml:"registry_file"`
}

// Default returns the default configuration. These defaults make the
// tool usable against the standard account with no config file at all;
// a file only needs to name what differs.
func Default() *Config {
	return &Config{
		Environment: elbops.Staging,
		API: APIConfig{
			URL:     "https://us-3.rightscale.com",
			Version: "1.5",
		},
		Poll: PollConfig{
			Interval: "1m",
			Rounds:   20,
		},
	}
}

// Load loads configuration from the file named by the ELBSHIFT_CONFIG
// environment variable, or returns the defaults when the variable is
// unset. A non-empty environment overrides the file's environment key
// before override sections are applied.
func Load(environment elbops.Environment) (*Config, error) {
	path := os.Getenv("ELBSHIFT_CONFIG")
	if path == "" {
		cfg := Default()
		cfg.finalize(environment)
		return cfg, nil
	}
	return LoadFile(path, environment)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables
// do not override config values. The only expansion performed is
// ${HOME} and similar patterns in path fields for portability.
func LoadFile(path string, environment elbops.Environment) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.finalize(environment)
	return cfg, nil
}

// finalize settles the effective environment, applies its override
// section, and expands path variables.
func (c *Config) finalize(environment elbops.Environment) {
	if environment != "" {
		c.Environment = environment
	}
	c.applyEnvironmentOverrides()
	c.expandVariables()
}

// applyEnvironmentOverrides applies the override section matching the
// effective environment.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *Overrides

	switch c.Environment {
	case elbops.Staging:
		overrides = c.StagingOverrides
	case elbops.Prod:
		overrides = c.ProdOverrides
	}

	if overrides == nil {
		return
	}

	if overrides.API != nil {
		if overrides.API.URL != "" {
			c.API.URL = overrides.API.URL
		}
		if overrides.API.Version != "" {
			c.API.Version = overrides.API.Version
		}
		if overrides.API.OAuth2URL != "" {
			c.API.OAuth2URL = overrides.API.OAuth2URL
		}
	}

	if overrides.Poll != nil {
		if overrides.Poll.Interval != "" {
			c.Poll.Interval = overrides.Poll.Interval
		}
		if overrides.Poll.Rounds > 0 {
			c.Poll.Rounds = overrides.Poll.Rounds
		}
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in path
// fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Scripts.RegistryFile = expandVars(c.Scripts.RegistryFile, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// PollInterval parses the configured polling interval.
func (c *Config) PollInterval() (time.Duration, error) {
	interval, err := time.ParseDuration(c.Poll.Interval)
	if err != nil {
		return 0, fmt.Errorf("poll.interval: %w", err)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("poll.interval must be positive, got %s", interval)
	}
	return interval, nil
}

// ScriptTable returns the effective script table: the embedded
// defaults with any registry file entries merged over them. The
// registry file is read at most once; later calls return the cached
// table.
func (c *Config) ScriptTable() (elbops.ScriptTable, error) {
	if c.scriptTable != nil {
		return c.scriptTable, nil
	}

	table := elbops.DefaultScriptTable()
	if c.Scripts.RegistryFile != "" {
		registry, err := LoadRegistry(c.Scripts.RegistryFile)
		if err != nil {
			return nil, err
		}
		for action, scripts := range registry {
			if table[action] == nil {
				table[action] = make(map[elbops.Environment]int64)
			}
			for environment, id := range scripts {
				table[action][environment] = id
			}
		}
	}

	c.scriptTable = table
	return table, nil
}

// Validate checks the configuration for errors, including that the
// script table covers every supported operation. Runs at startup,
// before any remote interaction.
func (c *Config) Validate() error {
	var errs []error

	if _, err := elbops.ParseEnvironment(string(c.Environment)); err != nil {
		errs = append(errs, err)
	}

	if c.API.URL == "" {
		errs = append(errs, fmt.Errorf("api.url is required"))
	}
	if c.API.Version == "" {
		errs = append(errs, fmt.Errorf("api.version is required"))
	}

	if _, err := c.PollInterval(); err != nil {
		errs = append(errs, err)
	}
	if c.Poll.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("poll.rounds must be positive, got %d", c.Poll.Rounds))
	}

	table, err := c.ScriptTable()
	if err != nil {
		errs = append(errs, err)
	} else if err := table.Validate(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
