// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package userconfig loads the optional per-user nixbox configuration from
// $XDG_CONFIG_HOME/nixbox.
package userconfig

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/cuecfg"
	"go.jetify.com/nixbox/internal/debug"
	"go.jetify.com/nixbox/internal/xdg"
)

const (
	DefaultChannel = "nixos-unstable"
	DefaultEditor  = "code"
)

// candidates are tried in order, the first one found wins.
var candidates = []string{"config.json", "config.yaml", "config.yml", "config.toml"}

type Config struct {
	Channel string `json:"channel,omitempty" yaml:"channel,omitempty" toml:"channel,omitempty"`
	Editor  string `json:"editor,omitempty" yaml:"editor,omitempty" toml:"editor,omitempty"`
	// Packages are added to the shell of every new project.
	Packages []string `json:"packages,omitempty" yaml:"packages,omitempty" toml:"packages,omitempty"`
	// Pin controls whether init pins nixpkgs with niv. Unset means true.
	Pin *bool `json:"pin,omitempty" yaml:"pin,omitempty" toml:"pin,omitempty"`

	// Path is the file the config was read from, empty for the defaults.
	Path string `json:"-" yaml:"-" toml:"-"`
}

func Default() *Config {
	return &Config{
		Channel: DefaultChannel,
		Editor:  DefaultEditor,
	}
}

func Dir() string {
	return xdg.ConfigSubpath("nixbox")
}

// Load reads the user config from Dir. A missing config is not an error.
func Load() (*Config, error) {
	return LoadFrom(Dir())
}

func LoadFrom(dir string) (*Config, error) {
	cfg := Default()
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, errors.WithStack(err)
		}

		if err := cuecfg.ParseFile(path, cfg); err != nil {
			return nil, usererr.WithUserMessage(err, "Failed to parse config file %s", path)
		}
		cfg.Path = path
		debug.Log("userconfig: loaded %s", path)
		break
	}
	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}
	if cfg.Editor == "" {
		cfg.Editor = DefaultEditor
	}
	return cfg, nil
}

func (c *Config) PinEnabled() bool {
	return c.Pin == nil || *c.Pin
}
