// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package validate holds the allow-lists applied to interactively entered
// values before they end up in a file path or a shell command line.
package validate

import (
	"strings"

	"golang.org/x/mod/module"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
)

// Word reports whether s is non-empty and made only of ASCII letters and
// digits.
func Word(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) {
			return false
		}
	}
	return true
}

// Path reports whether s is non-empty and made only of ASCII letters, digits,
// dots and forward slashes.
func Path(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isAlnum(c) && c != '.' && c != '/' {
			return false
		}
	}
	return true
}

// EnvKey reports whether s can be used as an environment variable name in
// the generated mkShell attribute set.
func EnvKey(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isAlnum(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

// NixAttrPath reports whether s is a dot separated path of Nix identifiers,
// such as `hello` or `python3Packages.black`, that can be pasted into a
// `with pkgs; [ ... ]` list as is.
func NixAttrPath(s string) bool {
	if s == "" {
		return false
	}
	for _, ident := range strings.Split(s, ".") {
		if !nixIdent(ident) {
			return false
		}
	}
	return true
}

func nixIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isIdentStart(c) && !isDigit(c) && c != '\'' && c != '-' {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func CheckNixAttrPath(s string) error {
	if !NixAttrPath(s) {
		return usererr.New("%q is not a valid nixpkgs attribute path", s)
	}
	return nil
}

// CrateName checks that a word is also accepted by cargo as a package name.
func CrateName(s string) error {
	if err := CheckWord(s); err != nil {
		return err
	}
	if isDigit(s[0]) {
		return usererr.New("%q is not a valid crate name: it must not start with a digit", s)
	}
	return nil
}

func CheckWord(s string) error {
	if !Word(s) {
		return usererr.New("Expect word input (letters and digits only), got %q", s)
	}
	return nil
}

func CheckPath(s string) error {
	if !Path(s) {
		return usererr.New("Expect path input (letters, digits, '.' and '/' only), got %q", s)
	}
	return nil
}

// GoModulePath checks s the way `go mod init` checks a module path.
func GoModulePath(s string) error {
	if err := CheckPath(s); err != nil {
		return err
	}
	if err := module.CheckImportPath(s); err != nil {
		return usererr.WithUserMessage(err, "%q is not a valid Go module path", s)
	}
	return nil
}

// JavaPackage checks s as a dot separated Java package name and returns it
// with any '/' normalised to '.'.
func JavaPackage(s string) (string, error) {
	if err := CheckPath(s); err != nil {
		return "", err
	}
	pkg := strings.ReplaceAll(s, "/", ".")
	for _, segment := range strings.Split(pkg, ".") {
		if segment == "" || isDigit(segment[0]) {
			return "", usererr.New("%q is not a valid Java package name", s)
		}
	}
	return pkg, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
