package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireFileContent asserts that the file at path holds exactly expected.
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content), "Unexpected content in: %s", path)
}

// RequireFilePermissions asserts that a file has specific permissions
func RequireFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err, "Failed to stat file: %s", path)
	require.Equal(t, expectedMode, info.Mode().Perm(), "File permissions mismatch: %s", path)
}
