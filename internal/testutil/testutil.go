// Package testutil holds helpers shared by the command tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteInputFile writes content to a puzzle input file inside a fresh
// temp directory and returns its path. The directory is cleaned up when
// the test completes.
func WriteInputFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteInputsDir creates an inputs directory holding one dayN.txt file
// per entry and returns the directory path.
func WriteInputsDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "inputs")
	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}
