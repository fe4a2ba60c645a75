// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads phonegrep's configuration: the default region and
// leniency a scan runs with, its try-budget ceiling, and display
// preferences. Trimmed from the teacher's much larger Config (which also
// carried preprocessor, redaction, and platform settings this repository
// has no use for), but kept to the same shape: LoadConfig/FindConfigFile
// reading a YAML file with gopkg.in/yaml.v3, falling back to defaults when
// no file is found.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds phonegrep's scan defaults.
type Config struct {
	Defaults struct {
		// Region is the default region code (e.g. "US") used to resolve
		// numbers written in national form. "" or "ZZ" means none.
		Region string `yaml:"region"`

		// Leniency names a matcher.Leniency level: POSSIBLE, VALID,
		// STRICT_GROUPING, or EXACT_GROUPING.
		Leniency string `yaml:"leniency"`

		// TryBudget is the maximum number of parse/verify attempts a scan
		// may spend before giving up (§3's try_budget).
		TryBudget int `yaml:"try_budget"`

		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"defaults"`

	// Profiles are named overrides of Defaults, selected with --profile.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is a named override of Config.Defaults.
type Profile struct {
	Region      string `yaml:"region"`
	Leniency    string `yaml:"leniency"`
	TryBudget   int    `yaml:"try_budget"`
	Format      string `yaml:"format"`
	NoColor     bool   `yaml:"no_color"`
	Debug       bool   `yaml:"debug"`
	Description string `yaml:"description"`
}

const (
	defaultLeniency  = "VALID"
	defaultTryBudget = 1000
	defaultFormat    = "text"
)

// LoadConfig loads configuration from configPath. An empty configPath
// returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{Profiles: make(map[string]Profile)}
	cfg.Defaults.Region = ""
	cfg.Defaults.Leniency = defaultLeniency
	cfg.Defaults.TryBudget = defaultTryBudget
	cfg.Defaults.Format = defaultFormat
	cfg.Defaults.NoColor = false
	cfg.Defaults.Debug = false

	if configPath == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}
	return cfg, nil
}

// FindConfigFile looks for a configuration file in the current directory.
func FindConfigFile() string {
	for _, name := range []string{"phonegrep.yaml", "phonegrep.yml", ".phonegrep.yaml", ".phonegrep.yml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// GetProfile returns a profile by name, or nil if not found.
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// ListProfiles returns the names of all configured profiles.
func (c *Config) ListProfiles() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns a default configuration -- callers should not crash on a
// missing or malformed config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}
