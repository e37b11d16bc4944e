// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package shellcmd composes the single command line that initializes a
// project inside the sandbox shell.
package shellcmd

import (
	"strings"

	"al.essio.dev/pkg/shellescape"

	"go.jetify.com/nixbox/internal/language"
)

// Chain is a sequence of steps joined with &&, so the first failure stops
// the rest.
type Chain []language.Step

func (c *Chain) Add(label string, args ...string) {
	*c = append(*c, language.Step{Label: label, Args: args})
}

// String renders the chain as one shell line. Every label is echoed before
// its command so the user can tell which step failed. Every label and
// argument is quoted.
func (c Chain) String() string {
	parts := make([]string, 0, 2*len(c))
	for _, step := range c {
		parts = append(parts, "echo "+shellescape.Quote(step.Label))
		parts = append(parts, shellescape.QuoteCommand(step.Args))
	}
	return strings.Join(parts, " && ")
}

func (c Chain) Labels() []string {
	labels := make([]string, 0, len(c))
	for _, step := range c {
		labels = append(labels, step.Label)
	}
	return labels
}
