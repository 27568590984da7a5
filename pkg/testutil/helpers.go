package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/doot/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteFile writes a file through fsys, creating parent directories, and
// fails the test on error.
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	WriteFileMode(t, fsys, path, content, 0644)
}

// WriteFileMode is WriteFile with an explicit permission mode.
func WriteFileMode(t *testing.T, fsys types.FS, path, content string, perm fs.FileMode) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), perm))
}

// Symlink creates a symlink through fsys, creating parent directories, and
// fails the test on error.
func Symlink(t *testing.T, fsys types.FS, target, link string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, fsys.Symlink(target, link))
}

// ReadFile reads a file through fsys and fails the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
