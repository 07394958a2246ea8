package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyCommand(t *testing.T) {
	path := writeScenario(t, `
capacity: 10
ops:
  - {op: add, id: 1, start: 0, length: 3}
  - {op: find, length: 2}
  - {op: compact}
`)

	rootCmd.SetArgs([]string{"apply", path, "--quiet"})
	require.NoError(t, rootCmd.Execute())
}

func TestStatsCommand(t *testing.T) {
	path := writeScenario(t, `
capacity: 10
ops:
  - {op: add, id: 1, start: 2, length: 3}
`)

	rootCmd.SetArgs([]string{"stats", path, "--quiet"})
	require.NoError(t, rootCmd.Execute())
}

func TestApplyCommandMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"apply", filepath.Join(t.TempDir(), "absent.yaml"), "--quiet"})
	require.Error(t, rootCmd.Execute())
}

func TestApplyCommandBadScenario(t *testing.T) {
	path := writeScenario(t, `
capacity: 10
ops:
  - {op: shuffle}
`)

	rootCmd.SetArgs([]string{"apply", path, "--quiet"})
	require.Error(t, rootCmd.Execute())
}
