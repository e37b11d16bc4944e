// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package midcobra

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
)

func newTestExecutable(runErr func() error) (Executable, *bytes.Buffer) {
	var stderr bytes.Buffer
	cmd := &cobra.Command{
		Use:           "test",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(*cobra.Command, []string) error {
			return runErr()
		},
	}
	cmd.SetErr(&stderr)
	exe := New(cmd)
	debugMiddleware := &DebugMiddleware{}
	debugMiddleware.AttachToFlag(cmd.PersistentFlags(), "debug")
	exe.AddMiddleware(debugMiddleware)
	return exe, &stderr
}

func TestExecuteSuccess(t *testing.T) {
	exe, stderr := newTestExecutable(func() error { return nil })
	assert.Equal(t, 0, exe.Execute(context.Background(), nil))
	assert.Empty(t, stderr.String())
}

func TestExecuteUserError(t *testing.T) {
	exe, stderr := newTestExecutable(func() error {
		return usererr.New("Expect word input")
	})
	assert.Equal(t, 1, exe.Execute(context.Background(), nil))
	assert.Contains(t, stderr.String(), "Error: Expect word input")
}

func TestExecutePropagatesChildExitCode(t *testing.T) {
	exe, stderr := newTestExecutable(func() error {
		err := usererr.NewExecError(exec.Command("sh", "-c", "exit 7").Run())
		return usererr.WithUserMessage(err, "Error building project")
	})
	assert.Equal(t, 7, exe.Execute(context.Background(), nil))
	assert.Contains(t, stderr.String(), "Error building project")
}

func TestExecuteInternalError(t *testing.T) {
	exe, stderr := newTestExecutable(func() error {
		return errors.New("boom")
	})
	assert.Equal(t, 1, exe.Execute(context.Background(), nil))
	assert.Contains(t, stderr.String(), "Error: boom")
}
