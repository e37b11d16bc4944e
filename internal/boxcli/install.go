// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"github.com/spf13/cobra"
)

func installCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "install",
		Short:   "Install the project into your Nix profile",
		Long:    "Install the build attribute of default.nix into the user's profile with nix-env.",
		Args:    cobra.NoArgs,
		PreRunE: ensureNixInstalled,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, ".")
			if err != nil {
				return err
			}
			return p.Install(cmd.Context())
		},
	}
	return command
}
