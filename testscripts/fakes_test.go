// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package testscripts

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// callLogEnv names the file every fake appends its invocation to.
const callLogEnv = "NIXBOX_TEST_CALL_LOG"

// fakeCommands stand in for Nix and the language toolchains. They do just
// enough on disk for the next step of an init chain to behave like the real
// tool would.
var fakeCommands = map[string]func() int{
	"nix-shell": fakeNixShell,
	"nix-build": fakeNixBuild,
	"nix-env":   fakeNixEnv,
	"git":       fakeGit,
	"niv":       fakeNiv,
	"go":        fakeGo,
	"cargo":     fakeCargo,
	"mvn":       fakeMvn,
	"code":      fakeEditor,
}

func logCall(args []string) {
	path := os.Getenv(callLogEnv)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	fmt.Fprintln(f, strings.Join(args, " "))
}

func fail(format string, a ...any) int {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	return 1
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func touch(path, content string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

// fakeNixShell runs the --run command with sh, in the current environment.
func fakeNixShell() int {
	args := os.Args[1:]
	logged := slices.Clone(args)
	run := ""
	if i := slices.Index(args, "--run"); i >= 0 && i+1 < len(args) {
		run = args[i+1]
		logged[i+1] = "<cmd>"
	}
	logCall(append([]string{"nix-shell"}, logged...))

	if len(args) > 0 && strings.HasSuffix(args[0], ".nix") && !exists(args[0]) {
		return fail("error: getting status of '%s': No such file or directory", args[0])
	}
	if run == "" {
		return 0
	}
	cmd := exec.Command("/bin/sh", "-c", run)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return fail("nix-shell: %v", err)
	}
	return 0
}

func fakeNixBuild() int {
	logCall(append([]string{"nix-build"}, os.Args[1:]...))
	if !exists("default.nix") {
		return fail("error: opening file 'default.nix': No such file or directory")
	}
	touch("result", "")
	return 0
}

func fakeNixEnv() int {
	logCall(append([]string{"nix-env"}, os.Args[1:]...))
	if !exists("default.nix") {
		return fail("error: opening file 'default.nix': No such file or directory")
	}
	fmt.Fprintln(os.Stderr, "installing 'hello-0.1.0'")
	return 0
}

func fakeGit() int {
	args := os.Args[1:]
	logCall(append([]string{"git"}, args...))
	if len(args) == 0 {
		return fail("usage: git <command>")
	}
	switch args[0] {
	case "init":
		if err := os.MkdirAll(".git", 0o755); err != nil {
			return fail("git init: %v", err)
		}
	case "add":
		if !exists(".git") {
			return fail("fatal: not a git repository")
		}
		for _, path := range args[1:] {
			if !exists(path) {
				return fail("fatal: pathspec '%s' did not match any files", path)
			}
		}
		f, err := os.OpenFile(".git/added", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fail("git add: %v", err)
		}
		defer f.Close()
		for _, path := range args[1:] {
			fmt.Fprintln(f, path)
		}
	case "commit":
		i := slices.Index(args, "-m")
		if i < 0 || i+1 >= len(args) {
			return fail("fatal: commit message required")
		}
		touch(".git/COMMIT_MSG", args[i+1]+"\n")
	}
	return 0
}

func fakeNiv() int {
	args := os.Args[1:]
	logCall(append([]string{"niv"}, args...))
	branch := "master"
	if i := slices.Index(args, "--nixpkgs-branch"); i >= 0 && i+1 < len(args) {
		branch = args[i+1]
	}
	touch("nix/sources.json", fmt.Sprintf("{\"nixpkgs\": {\"branch\": %q}}\n", branch))
	touch("nix/sources.nix", "# niv sources\n")
	return 0
}

func fakeGo() int {
	args := os.Args[1:]
	logCall(append([]string{"go"}, args...))
	switch strings.Join(args[:min(2, len(args))], " ") {
	case "mod init":
		if exists("go.mod") {
			return fail("go: %s already exists", filepath.Join(mustGetwd(), "go.mod"))
		}
		if len(args) < 3 {
			return fail("go: cannot determine module path")
		}
		touch("go.mod", "module "+args[2]+"\n\ngo 1.24\n")
	case "mod tidy":
		if !exists("go.mod") {
			return fail("go: go.mod file not found in current directory")
		}
	case "build -o", "build ./...":
		data, err := os.ReadFile("go.mod")
		if err != nil {
			return fail("go: go.mod file not found in current directory")
		}
		// Like go build, a single main package without -o leaves its
		// executable in the working directory.
		out := path.Base(strings.TrimSpace(strings.TrimPrefix(strings.SplitN(string(data), "\n", 2)[0], "module")))
		if args[1] == "-o" && len(args) > 2 {
			out = args[2]
		}
		if out != os.DevNull {
			touch(out, "binary\n")
		}
	}
	return 0
}

func fakeCargo() int {
	logCall(append([]string{"cargo"}, os.Args[1:]...))
	if !exists("Cargo.toml") {
		return fail("error: could not find `Cargo.toml`")
	}
	touch("Cargo.lock", "version = 3\n")
	touch("target/debug/.fingerprint", "")
	return 0
}

func fakeMvn() int {
	logCall(append([]string{"mvn"}, os.Args[1:]...))
	if !exists("pom.xml") {
		return fail("[ERROR] The goal you specified requires a project to execute but there is no POM")
	}
	touch("target/classes/.built", "")
	return 0
}

func fakeEditor() int {
	logCall(append([]string{"code"}, os.Args[1:]...))
	fmt.Println("opened " + strings.Join(os.Args[1:], " "))
	return 0
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return wd
}
