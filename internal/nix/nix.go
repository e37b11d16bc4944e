// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package nix runs the Nix commands nixbox relies on: nix-shell for the
// sandbox, nix-build and nix-env for building and installing a project.
package nix

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/debug"
)

// Cmd describes a process to run. Stdin, Stdout and Stderr of the process are
// connected to the given streams.
type Cmd struct {
	Name string
	Args []string
	Dir  string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (c *Cmd) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Commander starts processes. Tests substitute a Recorder.
type Commander interface {
	Run(ctx context.Context, cmd *Cmd) error
	LookPath(file string) (string, error)
}

// OSCommander runs real processes.
type OSCommander struct{}

func (OSCommander) Run(ctx context.Context, c *Cmd) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	defer debug.Timer(c.Name).End()
	debug.Log("Running %q in %q", cmd, c.Dir)
	if err := cmd.Run(); err != nil {
		// Keep *exec.ExitError as is so callers can read the exit code.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		return errors.WithStack(err)
	}
	return nil
}

func (OSCommander) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Streams are the standard streams handed to the commands.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}
