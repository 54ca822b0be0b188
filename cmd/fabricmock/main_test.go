package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

var listScenario = filepath.Join("..", "..", "internal", "cli", "testdata", "list.yaml")

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fabricmock version dev\n", out)
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--quiet", "--log-level", "error", listScenario)
	require.NoError(t, err)
	assert.Contains(t, out, ">>> PASS list")
}

func TestTreeCommand_Mermaid(t *testing.T) {
	out, err := execute(t, "tree", "--format", "mermaid", "--log-level", "error", listScenario)
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "root_3 --> n10")
}

func TestSnapshotThenRestoreCommand(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	out, err := execute(t, "snapshot", "--redis", mr.Addr(), "--log-level", "error", listScenario)
	require.NoError(t, err)
	assert.Equal(t, "saved 1 root(s) to "+mr.Addr()+"\n", out)

	out, err = execute(t, "restore", "--redis", mr.Addr(), "--format", "mermaid", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "root_3 --> n10")
}
