// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package nix

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jetify.com/nixbox/internal/boxcli/usererr"
)

func newTestSandbox() (*Sandbox, *Recorder) {
	rec := &Recorder{}
	return &Sandbox{Commander: rec}, rec
}

func TestShellCmd(t *testing.T) {
	got := ShellCmd(ShellArgs{
		Pure:     true,
		Run:      "echo 'git init' && git init",
		Packages: []string{"git", "niv", "go", "git"},
	})
	want := []string{"--pure", "--run", "echo 'git init' && git init", "-p", "git", "niv", "go"}
	assert.Equal(t, want, got)
}

func TestShellRecordsInvocation(t *testing.T) {
	sb, rec := newTestSandbox()
	err := sb.Shell(context.Background(), ShellArgs{Pure: true, Run: "true", Packages: []string{"git"}, Dir: "/p"})
	require.NoError(t, err)

	cmds := rec.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "nix-shell", cmds[0].Name)
	assert.Equal(t, "/p", cmds[0].Dir)
	assert.Equal(t, "nix-shell --pure --run true -p git", cmds[0].String())
}

func TestEditorMissingShellNixSpawnsNothing(t *testing.T) {
	sb, rec := newTestSandbox()
	err := sb.Editor(context.Background(), "code", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	_, isUserErr := usererr.Extract(err)
	assert.True(t, isUserErr)
	assert.Empty(t, rec.Commands())
}

func TestEditor(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shell.nix"), []byte("{}"), 0o644))

	sb, rec := newTestSandbox()
	require.NoError(t, sb.Editor(context.Background(), "code", dir))

	cmds := rec.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, []string{filepath.Join(dir, "shell.nix"), "--run", "code " + dir}, cmds[0].Args)
}

func TestBuildAndInstall(t *testing.T) {
	sb, rec := newTestSandbox()
	require.NoError(t, sb.Build(context.Background(), "/p"))
	require.NoError(t, sb.Install(context.Background(), "/p"))

	cmds := rec.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "nix-build -A build", cmds[0].String())
	assert.Equal(t, "nix-env -f . --install -A build", cmds[1].String())
}

func TestRunPropagatesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	sb := &Sandbox{Commander: OSCommander{}}
	err := sb.run(context.Background(), "", "sh", "-c", "exit 3")

	var exitErr *usererr.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestBinaryInstalled(t *testing.T) {
	sb, rec := newTestSandbox()
	assert.False(t, sb.BinaryInstalled())
	assert.Error(t, sb.EnsureInstalled())

	rec.Installed = []string{"nix-shell"}
	assert.True(t, sb.BinaryInstalled())
	assert.NoError(t, sb.EnsureInstalled())
}
