// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package stepper

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStepperWithoutTerminal(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}

	s := Start(buf, "Writing project files")
	assert.Empty(t, buf.String(), "no spinner output expected on a non-terminal writer")

	s.Success("Wrote %d files", 4)
	assert.Equal(t, "✓ Wrote 4 files\n", buf.String())
}

func TestStepperFail(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}

	Start(buf, "Writing project files").Fail("Could not write build.nix")
	assert.Equal(t, "✘ Could not write build.nix\n", buf.String())
}
