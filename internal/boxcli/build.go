// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "build",
		Short:   "Build the project with nix-build",
		Long:    "Build the build attribute of default.nix. The result is linked at ./result.",
		Args:    cobra.NoArgs,
		PreRunE: ensureNixInstalled,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, ".")
			if err != nil {
				return err
			}
			return p.Build(cmd.Context())
		},
	}
	return command
}
