// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package userconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, DefaultChannel, cfg.Channel)
	assert.Equal(t, DefaultEditor, cfg.Editor)
	assert.True(t, cfg.PinEnabled())
	assert.Empty(t, cfg.Path)
}

func TestLoadJSONWithComments(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{
		// always a stable channel
		"channel": "nixos-24.05",
		"editor": "nvim",
		"packages": ["ripgrep",],
		"pin": false,
	}`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "nixos-24.05", cfg.Channel)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, []string{"ripgrep"}, cfg.Packages)
	assert.False(t, cfg.PinEnabled())
	assert.Equal(t, filepath.Join(dir, "config.json"), cfg.Path)
}

func TestLoadYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "packages:\n  - jq\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultChannel, cfg.Channel)
	assert.Equal(t, []string{"jq"}, cfg.Packages)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", "editor = 'hx'\npin = true\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "hx", cfg.Editor)
	assert.True(t, cfg.PinEnabled())
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"editor": "json"}`)
	writeConfig(t, dir, "config.toml", "editor = 'toml'\n")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Editor)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.yaml", "channel: [unclosed\n")

	_, err := LoadFrom(dir)
	assert.ErrorContains(t, err, "config.yaml")
}

func TestDirFollowsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/nixbox", Dir())
}
