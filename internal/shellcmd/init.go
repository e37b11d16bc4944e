// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package shellcmd

import (
	"strings"

	"go.jetify.com/nixbox/internal/language"
)

// InitOptions are the inputs of the init chain.
type InitOptions struct {
	Variant    *language.Variant
	Channel    string
	AccessPath string
	// Pin runs niv to pin nixpkgs to Channel.
	Pin bool
	// Invocation is the command line nixbox was called with. It becomes the
	// commit message.
	Invocation []string
}

// Init returns the chain that puts a freshly rendered project under version
// control, pins nixpkgs and runs the language toolchain.
func Init(opts InitOptions) Chain {
	var c Chain
	c.Add("git init", "git", "init")
	c.Add("git add *.nix", "git", "add", "build.nix", "shell.nix", "default.nix")
	if opts.Pin {
		c.Add("niv init", "niv", "init",
			"--nixpkgs", "NixOS/nixpkgs",
			"--nixpkgs-branch", opts.Channel,
		)
		c.Add("git add nix", "git", "add", "nix")
	}
	c = append(c, opts.Variant.ToolchainSteps(opts.AccessPath)...)
	if len(opts.Variant.Tracked) > 0 {
		c.Add("git add "+opts.Variant.Language.String(), append([]string{"git", "add"}, opts.Variant.Tracked...)...)
	}
	c.Add("git add .gitignore", "git", "add", ".gitignore")
	c.Add("git commit", "git", "commit", "-m", strings.Join(opts.Invocation, " "))
	return c
}
