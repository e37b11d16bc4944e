// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package nix

import (
	"context"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
	"github.com/samber/lo"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/fileutil"
)

// Sandbox runs commands inside a Nix shell.
type Sandbox struct {
	Commander Commander
	Streams   Streams
}

func NewSandbox(streams Streams) *Sandbox {
	return &Sandbox{Commander: OSCommander{}, Streams: streams}
}

type ShellArgs struct {
	// File is a shell.nix to enter. Leave it empty for an ad hoc shell made
	// of Packages.
	File string
	// Pure clears the environment except for the shell's packages.
	Pure bool
	// Run is a shell command line executed inside the shell.
	Run      string
	Packages []string
	Dir      string
}

// ShellCmd returns the nix-shell arguments for args.
func ShellCmd(args ShellArgs) []string {
	argv := []string{}
	if args.File != "" {
		argv = append(argv, args.File)
	}
	if args.Pure {
		argv = append(argv, "--pure")
	}
	if args.Run != "" {
		argv = append(argv, "--run", args.Run)
	}
	if len(args.Packages) > 0 {
		argv = append(argv, "-p")
		argv = append(argv, lo.Uniq(args.Packages)...)
	}
	return argv
}

// Shell runs nix-shell. A non-zero exit of the shell is returned as a
// *usererr.ExitError.
func (s *Sandbox) Shell(ctx context.Context, args ShellArgs) error {
	return s.run(ctx, args.Dir, "nix-shell", ShellCmd(args)...)
}

// Editor opens editor on dir inside the shell described by dir/shell.nix.
// Nothing is started when dir has no shell.nix.
func (s *Sandbox) Editor(ctx context.Context, editor, dir string) error {
	shellFile := filepath.Join(dir, "shell.nix")
	if !fileutil.IsFile(shellFile) {
		return usererr.New("No shell.nix found in %s. Run `nixbox init` there first.", dir)
	}
	return s.Shell(ctx, ShellArgs{
		File: shellFile,
		Run:  editor + " " + shellescape.Quote(dir),
	})
}

// Build runs nix-build on the build attribute of the project in dir.
func (s *Sandbox) Build(ctx context.Context, dir string) error {
	return s.run(ctx, dir, "nix-build", "-A", "build")
}

// Install adds the build attribute of the project in dir to the user's
// profile.
func (s *Sandbox) Install(ctx context.Context, dir string) error {
	return s.run(ctx, dir, "nix-env", "-f", ".", "--install", "-A", "build")
}

func (s *Sandbox) BinaryInstalled() bool {
	_, err := s.Commander.LookPath("nix-shell")
	return err == nil
}

func (s *Sandbox) run(ctx context.Context, dir, name string, args ...string) error {
	err := s.Commander.Run(ctx, &Cmd{
		Name:   name,
		Args:   args,
		Dir:    dir,
		Stdin:  s.Streams.In,
		Stdout: s.Streams.Out,
		Stderr: s.Streams.Err,
	})
	return usererr.NewExecError(err)
}
