// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/language"
	"go.jetify.com/nixbox/internal/project"
	"go.jetify.com/nixbox/internal/userconfig"
)

type initCmdFlags struct {
	channel    string
	name       string
	accessPath string
	packages   []string
	noPin      bool
	env        envFlag
}

func initCmd() *cobra.Command {
	flags := &initCmdFlags{}
	command := &cobra.Command{
		Use:   "init [none|rust|go|maven]",
		Short: "Initialize the current directory as a Nix project",
		Long: heredoc.Doc(`
			Initialize the current directory as a Nix project.

			Writes build.nix, shell.nix, default.nix and .gitignore, plus the entry
			point and manifest of the chosen language. Then, inside a pure nix-shell,
			creates a git repository, pins nixpkgs with niv, runs the language
			toolchain once and commits everything.

			Existing files with the same names are overwritten.
		`),
		Example: heredoc.Doc(`
			nixbox init
			nixbox init rust
			nixbox init --channel nixos-24.05 go --access-path github.com/plop/hello
		`),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: lo.Map(language.All(), func(l language.Language, _ int) string { return l.String() }),
		PreRunE:   ensureNixInstalled,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitCmd(cmd, args, flags)
		},
	}

	command.Flags().StringVarP(
		&flags.channel, "channel", "c", userconfig.DefaultChannel, "nixpkgs channel to build against")
	command.Flags().StringVar(
		&flags.name, "name", "", "project name, defaults to the directory name")
	command.Flags().StringVar(
		&flags.accessPath, "access-path", "", "Go module path or Maven group id, skips the prompt")
	command.Flags().StringSliceVarP(
		&flags.packages, "package", "p", nil, "extra package for the project shell")
	command.Flags().BoolVar(
		&flags.noPin, "no-pin", false, "do not pin nixpkgs with niv")
	flags.env.register(command)

	return command
}

func runInitCmd(cmd *cobra.Command, args []string, flags *initCmdFlags) error {
	lang := language.None
	if len(args) > 0 {
		var err error
		if lang, err = language.Parse(args[0]); err != nil {
			return err
		}
	}

	cfg, err := userconfig.Load()
	if err != nil {
		return err
	}
	channel := cfg.Channel
	if cmd.Flags().Changed("channel") {
		channel = flags.channel
	}

	p, err := openProject(cmd, ".")
	if err != nil {
		return err
	}
	return p.Init(cmd.Context(), project.InitOpts{
		Language:   lang,
		Channel:    channel,
		Name:       flags.name,
		AccessPath: flags.accessPath,
		Packages:   append(cfg.Packages, flags.packages...),
		Env:        flags.env.opts(),
		Pin:        cfg.PinEnabled() && !flags.noPin,
		Invocation: invocation(),
	})
}
