// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package nix

import (
	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/fileutil"
)

// EnsureInstalled returns a user error when nix-shell is not on the PATH.
func (s *Sandbox) EnsureInstalled() error {
	if s.BinaryInstalled() {
		return nil
	}
	if fileutil.IsDir("/nix") {
		return usererr.New(
			"We found a /nix directory but nix-shell is not in your PATH. " +
				"Try restarting your terminal and running nixbox again. If after " +
				"restarting you still get this message it's possible nix setup is " +
				"missing from your shell rc file. See " +
				"https://github.com/NixOS/nix/issues/3616#issuecomment-903869569 for " +
				"more details.",
		)
	}
	return usererr.New(
		"could not find nix in your PATH\nInstall nix by following the " +
			"instructions at https://nixos.org/download.html and make sure you've " +
			"set up your PATH correctly",
	)
}
