// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/userconfig"
)

type codeCmdFlags struct {
	editor string
}

func codeCmd() *cobra.Command {
	flags := &codeCmdFlags{}
	command := &cobra.Command{
		Use:   "code [<path>]",
		Short: "Open a project in an editor inside its Nix shell",
		Long: "Open the project at <path> (the current directory by default) in an editor " +
			"running inside the project's nix-shell, so the editor sees the project's toolchain.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCodeCmd(cmd, args, flags)
		},
	}

	command.Flags().StringVar(
		&flags.editor, "editor", userconfig.DefaultEditor, "editor command to run")

	return command
}

func runCodeCmd(cmd *cobra.Command, args []string, flags *codeCmdFlags) error {
	editor := flags.editor
	if !cmd.Flags().Changed("editor") {
		cfg, err := userconfig.Load()
		if err != nil {
			return err
		}
		editor = cfg.Editor
	}

	p, err := openProject(cmd, pathArg(args))
	if err != nil {
		return err
	}
	// The shell.nix check comes first so a wrong path is reported as such,
	// even on machines without Nix.
	return p.Code(cmd.Context(), editor)
}
