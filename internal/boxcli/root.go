// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"context"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/boxcli/midcobra"
	"go.jetify.com/nixbox/internal/debug"
)

var debugMiddleware = &midcobra.DebugMiddleware{}

type rootCmdFlags struct {
	quiet bool
}

func RootCmd() *cobra.Command {
	flags := rootCmdFlags{}
	command := &cobra.Command{
		Use:   "nixbox",
		Short: "Scaffold Nix based development projects",
		Long: heredoc.Doc(`
			nixbox creates the Nix files of a new project (build.nix, shell.nix,
			default.nix and .gitignore), pins nixpkgs with niv, initializes the
			language toolchain and commits the result, all inside a pure nix-shell.
		`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.quiet {
				cmd.SetErr(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	command.AddCommand(initCmd())
	command.AddCommand(codeCmd())
	command.AddCommand(buildCmd())
	command.AddCommand(installCmd())
	command.AddCommand(languagesCmd())
	command.AddCommand(versionCmd())

	command.PersistentFlags().BoolVarP(
		&flags.quiet, "quiet", "q", false, "suppresses logs")
	debugMiddleware.AttachToFlag(command.PersistentFlags(), "debug")

	return command
}

func Execute(ctx context.Context, args []string) int {
	defer debug.Recover()
	exe := midcobra.New(RootCmd())
	exe.AddMiddleware(debugMiddleware)
	return exe.Execute(ctx, args)
}

func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:]))
}
