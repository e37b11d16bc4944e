// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package templates

import (
	"strings"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"nixstr":     NixString,
	"nixlist":    nixList,
	"channelURL": channelURL,
}

var nixStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`${`, `\${`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// NixString quotes s as a double quoted Nix string literal. The result never
// interpolates.
func NixString(s string) string {
	return `"` + nixStringEscaper.Replace(s) + `"`
}

// nixList renders package names for a `with pkgs; [ ... ]` list. Every name
// is preceded by a space.
func nixList(names []string) string {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteByte(' ')
		sb.WriteString(name)
	}
	return sb.String()
}

func channelURL(channel string) string {
	return "https://github.com/NixOS/nixpkgs/archive/refs/heads/" + channel + ".tar.gz"
}
