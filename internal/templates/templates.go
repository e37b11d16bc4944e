// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package templates renders the files nixbox writes into a new project.
// Rendering is pure: nothing here touches the filesystem.
package templates

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"go.jetify.com/nixbox/internal/language"
)

//go:embed tmpl/*
var tmplFS embed.FS

// Params are the values substituted into the templates.
type Params struct {
	Name    string
	Channel string
	// JavaPackage is the Maven group id, also used as the Java package.
	JavaPackage string
	Packages    []string
	Attrs       []language.Attr
	Ignores     []string
}

// File is a rendered file. Path is relative to the project directory.
type File struct {
	Path    string
	Content []byte
}

type FileSet []File

func (fs FileSet) Paths() []string {
	paths := make([]string, 0, len(fs))
	for _, f := range fs {
		paths = append(paths, f.Path)
	}
	return paths
}

// Render returns every file of a project of the given variant, descriptors
// first, then the language files.
func Render(v *language.Variant, p Params) (FileSet, error) {
	var files FileSet
	add := func(path string, content []byte, err error) error {
		if err != nil {
			return err
		}
		files = append(files, File{Path: path, Content: content})
		return nil
	}

	build, err := Build(v, p)
	if err := add("build.nix", build, err); err != nil {
		return nil, err
	}
	shell, err := Shell()
	if err := add("shell.nix", shell, err); err != nil {
		return nil, err
	}
	def, err := Default(p)
	if err := add("default.nix", def, err); err != nil {
		return nil, err
	}
	gitignore, err := Gitignore(p.Ignores)
	if err := add(".gitignore", gitignore, err); err != nil {
		return nil, err
	}

	switch v.Language {
	case language.Rust:
		manifest, err := CargoToml(p.Name)
		if err := add("Cargo.toml", manifest, err); err != nil {
			return nil, err
		}
		main, err := MainRust()
		if err := add("src/main.rs", main, err); err != nil {
			return nil, err
		}
	case language.Go:
		main, err := MainGo()
		if err := add("main.go", main, err); err != nil {
			return nil, err
		}
	case language.Maven:
		pom, err := PomXML(p.JavaPackage, p.Name)
		if err := add("pom.xml", pom, err); err != nil {
			return nil, err
		}
		app, err := AppJava(p.JavaPackage)
		if err := add(AppJavaPath(p.JavaPackage), app, err); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func Build(v *language.Variant, p Params) ([]byte, error) {
	return execute(v.BuildTemplate, p)
}

func Shell() ([]byte, error) {
	return execute("shell.nix", nil)
}

func Default(p Params) ([]byte, error) {
	return execute("default.nix", p)
}

func Gitignore(patterns []string) ([]byte, error) {
	return execute("gitignore", Params{Ignores: patterns})
}

func MainGo() ([]byte, error) {
	return execute("main.go", nil)
}

func MainRust() ([]byte, error) {
	return execute("main.rs", nil)
}

func AppJava(pkg string) ([]byte, error) {
	return execute("App.java", Params{JavaPackage: pkg})
}

// AppJavaPath is where the entry point of package pkg lives in a Maven
// source tree.
func AppJavaPath(pkg string) string {
	return "src/main/java/" + strings.ReplaceAll(pkg, ".", "/") + "/App.java"
}

var tmplCache = map[string]*template.Template{}

func execute(name string, data any) ([]byte, error) {
	tmplKey := name + ".tmpl"
	tmpl := tmplCache[tmplKey]
	if tmpl == nil {
		var err error
		glob := "tmpl/" + tmplKey
		tmpl, err = template.New(tmplKey).Funcs(templateFuncs).ParseFS(tmplFS, glob)
		if err != nil {
			return nil, errors.Wrapf(err, "parse embedded template %s", glob)
		}
		tmplCache[tmplKey] = tmpl
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "execute template %s", tmplKey)
	}
	return buf.Bytes(), nil
}
