// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package language describes the project variants nixbox can scaffold. Every
// per-language difference (templates, packages, environment, ignore
// patterns, toolchain commands) lives in one Variant entry so callers never
// switch on the language themselves.
package language

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
)

type Language string

const (
	None  Language = "none"
	Rust  Language = "rust"
	Go    Language = "go"
	Maven Language = "maven"
)

// AccessPathPlaceholder is replaced by the project's access path in
// toolchain step arguments.
const AccessPathPlaceholder = "{{path}}"

// Step is one labelled command, given as an argument vector.
type Step struct {
	Label string
	Args  []string
}

// Attr is a shell environment attribute whose value is a Nix expression.
type Attr struct {
	Key  string
	Expr string
}

type Variant struct {
	Language Language
	// BuildTemplate names the build.nix template under templates/tmpl.
	BuildTemplate string
	// ShellPackages end up in the mkShell packages list of default.nix.
	ShellPackages []string
	// SandboxPackages are made available with `nix-shell -p` while the
	// project is being initialized.
	SandboxPackages []string
	Attrs           []Attr
	Ignores         []string
	// AccessPathPrompt is non-empty when the variant needs an access path. It
	// is a format string taking the project name.
	AccessPathPrompt string
	Toolchain        []Step
	// Tracked are the language specific files added to git after the
	// toolchain ran.
	Tracked []string
}

// basePackages are part of every generated shell.
var basePackages = []string{"git", "nixpkgs-fmt"}

var variants = map[Language]*Variant{
	None: {
		Language:      None,
		BuildTemplate: "build.nix",
	},
	Rust: {
		Language:        Rust,
		BuildTemplate:   "build_rust.nix",
		ShellPackages:   []string{"cargo", "rustc", "rustfmt", "clippy"},
		SandboxPackages: []string{"cargo", "rustc"},
		Attrs: []Attr{
			{Key: "RUST_SRC_PATH", Expr: `"${pkgs.rustPlatform.rustLibSrc}"`},
		},
		Ignores: []string{"/target"},
		Toolchain: []Step{
			{Label: "cargo build", Args: []string{"cargo", "build"}},
		},
		Tracked: []string{"src", "Cargo.toml", "Cargo.lock"},
	},
	Go: {
		Language:        Go,
		BuildTemplate:   "build_go.nix",
		ShellPackages:   []string{"go", "gopls"},
		SandboxPackages: []string{"go"},
		Attrs: []Attr{
			{Key: "GOPATH", Expr: `"${PROJECT_ROOT}/gohome/go"`},
			{Key: "GOCACHE", Expr: `"${PROJECT_ROOT}/gohome/cache"`},
			{Key: "GOENV", Expr: `"${PROJECT_ROOT}/gohome/env"`},
		},
		Ignores:          []string{"/gohome"},
		AccessPathPrompt: "Access path (ex. github.com/plop/%s): ",
		Toolchain: []Step{
			{Label: "go mod init", Args: []string{"go", "mod", "init", AccessPathPlaceholder}},
			{Label: "go mod tidy", Args: []string{"go", "mod", "tidy"}},
			{Label: "go build", Args: []string{"go", "build", "-o", "/dev/null", "./..."}},
		},
		Tracked: []string{"main.go", "go.mod"},
	},
	Maven: {
		Language:        Maven,
		BuildTemplate:   "build_maven.nix",
		ShellPackages:   []string{"maven", "jdk"},
		SandboxPackages: []string{"maven", "jdk"},
		Attrs: []Attr{
			{Key: "JAVA_HOME", Expr: `"${pkgs.jdk.home}"`},
			{Key: "MAVEN_OPTS", Expr: `"-Dmaven.repo.local=${PROJECT_ROOT}/.m2/repository"`},
		},
		Ignores:          []string{"/target", "/.m2"},
		AccessPathPrompt: "Group id (ex. com.example.%s): ",
		Toolchain: []Step{
			{Label: "mvn package", Args: []string{"mvn", "--batch-mode", "package"}},
		},
		Tracked: []string{"pom.xml", "src"},
	},
}

// All returns the supported languages in display order.
func All() []Language {
	return []Language{None, Rust, Go, Maven}
}

func Parse(s string) (Language, error) {
	if s == "" {
		return None, nil
	}
	l := Language(strings.ToLower(s))
	if _, ok := variants[l]; !ok {
		return "", usererr.New(
			"unknown language %q, expected one of: %s",
			s, strings.Join(lo.Map(All(), func(l Language, _ int) string { return string(l) }), ", "),
		)
	}
	return l, nil
}

// Variant returns the table entry for l. It panics on a value that did not
// come from Parse or the constants above.
func (l Language) Variant() *Variant {
	v, ok := variants[l]
	if !ok {
		panic("language: unknown variant " + string(l))
	}
	return v
}

func (l Language) String() string { return string(l) }

// Packages returns the packages of the generated shell, starting with the
// ones every project gets.
func (v *Variant) Packages() []string {
	return slices.Concat(basePackages, v.ShellPackages)
}

func (v *Variant) NeedsAccessPath() bool {
	return v.AccessPathPrompt != ""
}

// ToolchainSteps returns the toolchain steps with the access path filled in.
func (v *Variant) ToolchainSteps(accessPath string) []Step {
	steps := make([]Step, 0, len(v.Toolchain))
	for _, step := range v.Toolchain {
		args := lo.Map(step.Args, func(arg string, _ int) string {
			return strings.ReplaceAll(arg, AccessPathPlaceholder, accessPath)
		})
		steps = append(steps, Step{Label: step.Label, Args: args})
	}
	return steps
}
