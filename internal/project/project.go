// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package project implements the nixbox actions: initializing a project,
// opening it in an editor, building and installing it.
package project

import (
	"context"
	"io"
	"path/filepath"

	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/filegen"
	"go.jetify.com/nixbox/internal/nix"
	"go.jetify.com/nixbox/internal/prompt"
)

// Project is a directory nixbox manages.
type Project struct {
	Dir     string
	Sandbox *nix.Sandbox
	Emitter filegen.Emitter
	Asker   prompt.Asker
	// Stderr receives progress messages.
	Stderr io.Writer
}

// Open returns a Project for dir wired to the real filesystem and Nix.
func Open(dir string, streams nix.Streams) (*Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Project{
		Dir:     abs,
		Sandbox: nix.NewSandbox(streams),
		Emitter: filegen.DirEmitter{Dir: abs},
		Asker:   prompt.New(streams.In, streams.Err),
		Stderr:  streams.Err,
	}, nil
}

// Code opens editor on the project inside its Nix shell.
func (p *Project) Code(ctx context.Context, editor string) error {
	if err := p.Sandbox.Editor(ctx, editor, p.Dir); err != nil {
		return usererr.WithUserMessage(err, "Error launching %s", editor)
	}
	return nil
}

// Build runs nix-build on the project. The result link is ./result.
func (p *Project) Build(ctx context.Context) error {
	if err := p.Sandbox.Build(ctx, p.Dir); err != nil {
		return usererr.WithUserMessage(err, "Error building project")
	}
	return nil
}

// Install installs the project build into the user's Nix profile.
func (p *Project) Install(ctx context.Context) error {
	if err := p.Sandbox.Install(ctx, p.Dir); err != nil {
		return usererr.WithUserMessage(err, "Error installing project")
	}
	return nil
}
