package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/prettify/pkg/consts"
	"github.com/stretchr/testify/require"
)

// FileFixture is an isolated directory tree of input files.
type FileFixture struct {
	Dir string
	t   *testing.T
}

// TestDir creates an empty fixture in a temp directory removed after the test.
func TestDir(t *testing.T) *FileFixture {
	t.Helper()
	return &FileFixture{Dir: t.TempDir(), t: t}
}

// WithFiles writes files keyed by slash-separated paths relative to the
// fixture, creating parent directories as needed.
func (f *FileFixture) WithFiles(files map[string]string) *FileFixture {
	f.t.Helper()

	for name, content := range files {
		path := f.Path(name)

		err := os.MkdirAll(filepath.Dir(path), consts.ModeDir)
		require.NoError(f.t, err, "Failed to create directory for: %s", name)

		err = os.WriteFile(path, []byte(content), consts.ModeFile)
		require.NoError(f.t, err, "Failed to write file: %s", name)
	}

	return f
}

// WithMode changes the permissions of a fixture file.
func (f *FileFixture) WithMode(name string, mode os.FileMode) *FileFixture {
	f.t.Helper()
	require.NoError(f.t, os.Chmod(f.Path(name), mode), "Failed to chmod file: %s", name)
	return f
}

// Path returns the absolute path of a fixture file.
func (f *FileFixture) Path(name string) string {
	return filepath.Join(f.Dir, filepath.FromSlash(name))
}

// ReadFile returns the current content of a fixture file.
func (f *FileFixture) ReadFile(name string) string {
	f.t.Helper()

	content, err := os.ReadFile(f.Path(name))
	require.NoError(f.t, err, "Failed to read file: %s", name)
	return string(content)
}
