// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/nix"
	"go.jetify.com/nixbox/internal/project"
)

// Functions that help parse arguments

func pathArg(args []string) string {
	if len(args) > 0 {
		p, err := filepath.Abs(args[0])
		if err != nil {
			// Can occur when the current working directory cannot be determined.
			panic(errors.WithStack(err))
		}
		return p
	}
	return "."
}

func cmdStreams(cmd *cobra.Command) nix.Streams {
	return nix.Streams{
		In:  cmd.InOrStdin(),
		Out: cmd.OutOrStdout(),
		Err: cmd.ErrOrStderr(),
	}
}

func openProject(cmd *cobra.Command, dir string) (*project.Project, error) {
	return project.Open(dir, cmdStreams(cmd))
}

func ensureNixInstalled(cmd *cobra.Command, _ []string) error {
	return nix.NewSandbox(cmdStreams(cmd)).EnsureInstalled()
}

// invocation is the command line as typed, used as the init commit message.
func invocation() []string {
	return append([]string{filepath.Base(os.Args[0])}, os.Args[1:]...)
}
