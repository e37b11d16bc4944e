// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package nix

import (
	"context"
	"os/exec"
	"slices"
	"sync"
)

// Recorder is a Commander that records commands instead of running them.
type Recorder struct {
	mu   sync.Mutex
	cmds []Cmd

	// RunFunc, when set, decides the result of each Run.
	RunFunc func(cmd *Cmd) error
	// Installed lists the binaries LookPath finds.
	Installed []string
}

func (r *Recorder) Run(_ context.Context, cmd *Cmd) error {
	r.mu.Lock()
	r.cmds = append(r.cmds, *cmd)
	r.mu.Unlock()
	if r.RunFunc != nil {
		return r.RunFunc(cmd)
	}
	return nil
}

func (r *Recorder) LookPath(file string) (string, error) {
	if slices.Contains(r.Installed, file) {
		return "/nix/var/nix/profiles/default/bin/" + file, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

func (r *Recorder) Commands() []Cmd {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cmds)
}
