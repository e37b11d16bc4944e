// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package project

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
	"go.jetify.com/nixbox/internal/language"
	"go.jetify.com/nixbox/internal/templates"
	"go.jetify.com/nixbox/internal/validate"
)

// EnvOpts are the user supplied shell environment attributes.
type EnvOpts struct {
	// Pairs are KEY=VALUE strings in command line order.
	Pairs []string
	// File is a dotenv file, relative to the project directory unless
	// absolute.
	File string
}

// environment merges the variant attributes with the env file and the
// KEY=VALUE pairs, in that order. A later value for the same key replaces
// the earlier one but keeps its position.
func environment(v *language.Variant, dir string, opts EnvOpts) ([]language.Attr, error) {
	attrs := orderedmap.New[string, string]()
	for _, attr := range v.Attrs {
		attrs.Set(attr.Key, attr.Expr)
	}

	if opts.File != "" {
		path := opts.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		fileEnv, err := godotenv.Read(path)
		if err != nil {
			return nil, usererr.WithUserMessage(errors.WithStack(err), "Failed to read env file %s", opts.File)
		}
		keys := lo.Keys(fileEnv)
		slices.Sort(keys)
		for _, key := range keys {
			if err := setUserAttr(attrs, key, fileEnv[key]); err != nil {
				return nil, err
			}
		}
	}

	for _, pair := range opts.Pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, usererr.New("Expect KEY=VALUE for --env, got %q", pair)
		}
		if err := setUserAttr(attrs, key, value); err != nil {
			return nil, err
		}
	}

	result := make([]language.Attr, 0, attrs.Len())
	for pair := attrs.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, language.Attr{Key: pair.Key, Expr: pair.Value})
	}
	return result, nil
}

func setUserAttr(attrs *orderedmap.OrderedMap[string, string], key, value string) error {
	if !validate.EnvKey(key) {
		return usererr.New("%q is not a valid environment variable name", key)
	}
	attrs.Set(key, templates.NixString(value))
	return nil
}
