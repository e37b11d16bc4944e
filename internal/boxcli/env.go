// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/project"
)

// to be composed into xyzCmdFlags structs
type envFlag struct {
	pairs []string
	file  string
}

func (f *envFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(
		&f.pairs, "env", "e", nil, "environment variable to set in the project shell, as KEY=VALUE",
	)
	cmd.Flags().StringVar(
		&f.file, "env-file", "", "path to a dotenv file with environment variables to set in the project shell",
	)
}

func (f *envFlag) opts() project.EnvOpts {
	return project.EnvOpts{Pairs: f.pairs, File: f.file}
}
