// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ux

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestMessagePrefixes(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name string
		fn   func(buf *bytes.Buffer)
		want string
	}{
		{"success", func(b *bytes.Buffer) { Fsuccess(b, "wrote %d files\n", 4) }, "Success: wrote 4 files\n"},
		{"info", func(b *bytes.Buffer) { Finfo(b, "entering nix\n") }, "Info: entering nix\n"},
		{"warning", func(b *bytes.Buffer) { Fwarning(b, "careful\n") }, "Warning: careful\n"},
		{"error", func(b *bytes.Buffer) { Ferror(b, "failed\n") }, "Error: failed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.fn(buf)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
