// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	cfg := LoadConfigOrDefault("")
	require.NotNil(t, cfg)
	assert.Equal(t, defaultFormat, cfg.Defaults.Format)
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	require.NotNil(t, cfg)
	assert.Equal(t, defaultLeniency, cfg.Defaults.Leniency)
}

func TestLoadConfigOrDefault_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  region: CH
  leniency: STRICT_GROUPING
  try_budget: 500
  format: json
  no_color: true
profiles:
  ci:
    region: US
    leniency: VALID
    try_budget: 100
    description: fast CI profile
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	cfg := LoadConfigOrDefault(configPath)
	require.NotNil(t, cfg)
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.Equal(t, "CH", cfg.Defaults.Region)
	assert.Equal(t, "STRICT_GROUPING", cfg.Defaults.Leniency)
	assert.Equal(t, 500, cfg.Defaults.TryBudget)
	assert.True(t, cfg.Defaults.NoColor)

	profile := cfg.GetProfile("ci")
	require.NotNil(t, profile)
	assert.Equal(t, "US", profile.Region)
	assert.Equal(t, 100, profile.TryBudget)
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600))

	cfg := LoadConfigOrDefault(configPath)
	require.NotNil(t, cfg, "fallback to defaults on parse error")
	assert.Equal(t, defaultLeniency, cfg.Defaults.Leniency)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.Equal(t, "VALID", cfg.Defaults.Leniency)
	assert.Equal(t, defaultTryBudget, cfg.Defaults.TryBudget)
	assert.Equal(t, "", cfg.Defaults.Region)
}

func TestLoadConfig_ProfilesInitialized(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.NotNil(t, cfg.Profiles)
	assert.Empty(t, cfg.ListProfiles())
}

func TestGetProfile_Missing(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg.GetProfile("missing"))
}
