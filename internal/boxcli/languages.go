// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package boxcli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.jetify.com/nixbox/internal/cuecfg"
	"go.jetify.com/nixbox/internal/language"
)

type languagesCmdFlags struct {
	json bool
}

func languagesCmd() *cobra.Command {
	flags := languagesCmdFlags{}
	command := &cobra.Command{
		Use:   "languages",
		Short: "List the languages init supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanguagesCmd(cmd, flags)
		},
	}
	command.Flags().BoolVar(&flags.json, "json", false, "print the languages as JSON")
	return command
}

type languageInfo struct {
	Name       string   `json:"name"`
	Packages   []string `json:"packages"`
	Ignores    []string `json:"ignores"`
	Tracked    []string `json:"tracked"`
	Toolchain  []string `json:"toolchain"`
	AccessPath bool     `json:"access_path"`
}

func languageInfos() []languageInfo {
	infos := []languageInfo{}
	for _, l := range language.All() {
		v := l.Variant()
		info := languageInfo{
			Name:       l.String(),
			Packages:   v.Packages(),
			Ignores:    append([]string{"/result"}, v.Ignores...),
			Tracked:    v.Tracked,
			AccessPath: v.NeedsAccessPath(),
		}
		for _, step := range v.Toolchain {
			info.Toolchain = append(info.Toolchain, strings.Join(step.Args, " "))
		}
		infos = append(infos, info)
	}
	return infos
}

func runLanguagesCmd(cmd *cobra.Command, flags languagesCmdFlags) error {
	w := cmd.OutOrStdout()
	infos := languageInfos()
	if flags.json {
		data, err := cuecfg.MarshalJSON(infos)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Language", "Packages", "Ignored", "Toolchain"})
	for _, info := range infos {
		row := []string{
			info.Name,
			strings.Join(info.Packages, " "),
			strings.Join(info.Ignores, " "),
			strings.Join(info.Toolchain, "; "),
		}
		if err := table.Append(row); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(table.Render())
}
