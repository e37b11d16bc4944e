// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/debug"
	"go.jetify.com/nixbox/internal/filegen"
	"go.jetify.com/nixbox/internal/fileutil"
	"go.jetify.com/nixbox/internal/language"
	"go.jetify.com/nixbox/internal/nix"
	"go.jetify.com/nixbox/internal/shellcmd"
	"go.jetify.com/nixbox/internal/templates"
	"go.jetify.com/nixbox/internal/ux"
	"go.jetify.com/nixbox/internal/ux/stepper"
	"go.jetify.com/nixbox/internal/validate"
)

type InitOpts struct {
	Language language.Language
	Channel  string
	// Name overrides the project name derived from the directory.
	Name string
	// AccessPath skips the access path prompt for variants that need one.
	AccessPath string
	// Packages are added to the shell after the variant's packages.
	Packages []string
	Env      EnvOpts
	Pin      bool
	// Invocation is the command line, recorded as the commit message.
	Invocation []string
}

// Init writes the project files and then runs the init chain in a pure
// sandbox shell. Files are written before anything runs and are not rolled
// back when the chain fails.
func (p *Project) Init(ctx context.Context, opts InitOpts) error {
	defer debug.FunctionTimer().End()

	v := opts.Language.Variant()
	for _, pkg := range opts.Packages {
		if err := validate.CheckNixAttrPath(pkg); err != nil {
			return err
		}
	}
	name, err := p.resolveName(v, opts.Name)
	if err != nil {
		return err
	}
	accessPath, err := p.resolveAccessPath(v, name, opts.AccessPath)
	if err != nil {
		return err
	}
	attrs, err := environment(v, p.Dir, opts.Env)
	if err != nil {
		return err
	}

	params := templates.Params{
		Name:     name,
		Channel:  opts.Channel,
		Packages: slices.Concat(v.Packages(), opts.Packages),
		Attrs:    attrs,
		Ignores:  v.Ignores,
	}
	if v.Language == language.Maven {
		params.JavaPackage = accessPath
	}
	debug.Log("init: %s project %q in %s", v.Language, name, p.Dir)

	files, err := templates.Render(v, params)
	if err != nil {
		return err
	}
	if existing := p.existingFiles(files); len(existing) > 0 {
		ux.Fwarning(p.Stderr, "Overwriting %s\n", strings.Join(existing, ", "))
	}
	step := stepper.Start(p.Stderr, "Writing project files")
	if err := filegen.EmitAll(p.Emitter, files); err != nil {
		step.Fail("Writing project files")
		return err
	}
	step.Success("Wrote %s", strings.Join(files.Paths(), ", "))

	chain := shellcmd.Init(shellcmd.InitOptions{
		Variant:    v,
		Channel:    opts.Channel,
		AccessPath: accessPath,
		Pin:        opts.Pin,
		Invocation: opts.Invocation,
	})
	ux.Finfo(p.Stderr, "Entering nix...\n")
	err = p.Sandbox.Shell(ctx, nix.ShellArgs{
		Pure:     true,
		Run:      chain.String(),
		Packages: sandboxPackages(v, opts.Pin),
		Dir:      p.Dir,
	})
	if err != nil {
		return usererr.WithUserMessage(err, "Error initializing project")
	}
	ux.Fsuccess(p.Stderr, "Initialized %s project %s\n", v.Language, name)
	return nil
}

func (p *Project) existingFiles(files templates.FileSet) []string {
	var existing []string
	for _, path := range files.Paths() {
		if fileutil.Exists(filepath.Join(p.Dir, path)) {
			existing = append(existing, path)
		}
	}
	return existing
}

func sandboxPackages(v *language.Variant, pin bool) []string {
	pkgs := []string{"git"}
	if pin {
		pkgs = append(pkgs, "niv")
	}
	return append(pkgs, v.SandboxPackages...)
}

// resolveName returns override when set, the directory name when it is a
// valid name for v and asks otherwise.
func (p *Project) resolveName(v *language.Variant, override string) (string, error) {
	check := validate.CheckWord
	if v.Language == language.Rust {
		check = validate.CrateName
	}
	if override != "" {
		return override, check(override)
	}
	base := filepath.Base(p.Dir)
	if err := check(base); err == nil {
		return base, nil
	}
	debug.Log("init: directory name %q is not a valid %s project name", base, v.Language)
	name, err := p.Asker.Ask("Name: ")
	if err != nil {
		return "", err
	}
	return name, check(name)
}

func (p *Project) resolveAccessPath(v *language.Variant, name, override string) (string, error) {
	if !v.NeedsAccessPath() {
		return "", nil
	}
	path := override
	if path == "" {
		var err error
		path, err = p.Asker.Ask(fmt.Sprintf(v.AccessPathPrompt, name))
		if err != nil {
			return "", err
		}
	}
	switch v.Language {
	case language.Go:
		return path, validate.GoModulePath(path)
	case language.Maven:
		return validate.JavaPackage(path)
	}
	return path, validate.CheckPath(path)
}
