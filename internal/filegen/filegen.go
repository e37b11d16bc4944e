// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package filegen writes rendered files to disk.
package filegen

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/debug"
	"go.jetify.com/nixbox/internal/templates"
)

type Emitter interface {
	Emit(name string, content []byte) error
}

// DirEmitter writes files relative to Dir. Existing files are truncated and
// parent directories of nested paths are created.
type DirEmitter struct {
	Dir string
}

func (d DirEmitter) Emit(name string, content []byte) error {
	if filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return errors.Errorf("refusing to write %q outside of %s", name, d.Dir)
	}
	path := filepath.Join(d.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.WithStack(err)
	}
	debug.Log("wrote %s (%d bytes)", path, len(content))
	return nil
}

// EmitAll writes files in order and stops at the first failure. Files that
// were already written stay on disk.
func EmitAll(e Emitter, files templates.FileSet) error {
	for _, f := range files {
		if err := e.Emit(f.Path, f.Content); err != nil {
			return errors.WithMessagef(err, "write %s", f.Path)
		}
	}
	return nil
}
