package store

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/testutil"
)

func TestNewSelectsStrategy(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	assert.Equal(t, "file", New(config.ModeFile, fsys).Name())
	assert.Equal(t, "link", New(config.ModeLink, fsys).Name())
	// File mode is the default strategy
	assert.Equal(t, "file", New("", fsys).Name())
}

func TestFileStoreMaterializeCreates(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "alias ll='ls -l'\n")
	s := NewFileStore(fsys)

	require.NoError(t, s.Materialize("/repo/bash/.bashrc", "/home/u/.bashrc"))

	assert.Equal(t, "alias ll='ls -l'\n", testutil.ReadFile(t, fsys, "/home/u/.bashrc"))
	// No temp file left behind
	for _, p := range fsys.Paths() {
		assert.NotContains(t, p, ".tmp")
	}
}

func TestFileStoreMaterializeCreatesParents(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/conf.d/x.conf", "x\n")
	s := NewFileStore(fsys)

	require.NoError(t, s.Materialize("/repo/g/conf.d/x.conf", "/home/u/.config/app/conf.d/x.conf"))
	assert.Equal(t, "x\n", testutil.ReadFile(t, fsys, "/home/u/.config/app/conf.d/x.conf"))
}

func TestFileStoreMaterializeOverwrites(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/rc", "new content\n")
	testutil.WriteFile(t, fsys, "/home/u/rc", "old content\n")
	s := NewFileStore(fsys)

	require.NoError(t, s.Materialize("/repo/g/rc", "/home/u/rc"))
	assert.Equal(t, "new content\n", testutil.ReadFile(t, fsys, "/home/u/rc"))
}

func TestFileStoreMaterializePreservesMode(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFileMode(t, fsys, "/repo/g/script.sh", "#!/bin/sh\n", 0755)
	s := NewFileStore(fsys)

	require.NoError(t, s.Materialize("/repo/g/script.sh", "/home/u/bin/script.sh"))

	info, err := fsys.Stat("/home/u/bin/script.sh")
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0755), info.Mode().Perm())
}

func TestFileStoreMaterializeWriteFailureKeepsDestination(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/rc", "new\n")
	testutil.WriteFile(t, fsys, "/home/u/rc", "old\n")
	fsys.WithError("/home/u/rc", assert.AnError)
	s := NewFileStore(fsys)

	err := s.Materialize("/repo/g/rc", "/home/u/rc")
	require.Error(t, err)

	// The rename failed, so the original content is untouched and the temp
	// file was cleaned up
	fsys.WithError("/home/u/rc", nil)
	assert.Equal(t, "old\n", testutil.ReadFile(t, fsys, "/home/u/rc"))
	for _, p := range fsys.Paths() {
		assert.NotContains(t, p, ".tmp")
	}
}

func TestFileStoreMaterializeMissingSource(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	s := NewFileStore(fsys)

	err := s.Materialize("/repo/g/missing", "/home/u/rc")
	assert.Error(t, err)
	assert.False(t, fsys.Exists("/home/u/rc"))
}

func TestFileStoreExistsAndRemove(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/home/u/rc", "x")
	s := NewFileStore(fsys)

	assert.True(t, s.Exists("/home/u/rc"))
	require.NoError(t, s.Remove("/home/u/rc"))
	assert.False(t, s.Exists("/home/u/rc"))
	// Removing a missing path is a no-op
	require.NoError(t, s.Remove("/home/u/rc"))
}

func TestLinkStoreMaterializeCreatesLink(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/bash/.bashrc", "content\n")
	s := NewLinkStore(fsys)

	require.NoError(t, s.Materialize("/repo/bash/.bashrc", "/home/u/.bashrc"))

	target, err := fsys.Readlink("/home/u/.bashrc")
	require.NoError(t, err)
	assert.Equal(t, "/repo/bash/.bashrc", target)
	assert.Equal(t, "content\n", testutil.ReadFile(t, fsys, "/home/u/.bashrc"))
}

func TestLinkStoreMaterializeReplacesExistingFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/rc", "repo\n")
	testutil.WriteFile(t, fsys, "/home/u/rc", "local\n")
	s := NewLinkStore(fsys)

	require.NoError(t, s.Materialize("/repo/g/rc", "/home/u/rc"))

	target, err := fsys.Readlink("/home/u/rc")
	require.NoError(t, err)
	assert.Equal(t, "/repo/g/rc", target)
}

func TestLinkStoreMaterializeReplacesBrokenLink(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/rc", "repo\n")
	testutil.Symlink(t, fsys, "/gone", "/home/u/rc")
	s := NewLinkStore(fsys)

	require.NoError(t, s.Materialize("/repo/g/rc", "/home/u/rc"))

	target, err := fsys.Readlink("/home/u/rc")
	require.NoError(t, err)
	assert.Equal(t, "/repo/g/rc", target)
}

func TestLinkStoreExistsSeesBrokenLink(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.Symlink(t, fsys, "/gone", "/home/u/dangling")
	s := NewLinkStore(fsys)

	assert.True(t, s.Exists("/home/u/dangling"))
	require.NoError(t, s.Remove("/home/u/dangling"))
	assert.False(t, s.Exists("/home/u/dangling"))
}

func TestStoreRead(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.WriteFile(t, fsys, "/repo/g/rc", "data\n")
	testutil.Symlink(t, fsys, "/repo/g/rc", "/home/u/rc")

	for _, s := range []Store{NewFileStore(fsys), NewLinkStore(fsys)} {
		data, err := s.Read("/home/u/rc")
		require.NoError(t, err, s.Name())
		assert.Equal(t, "data\n", string(data), s.Name())

		_, err = s.Read("/nope")
		assert.Error(t, err, s.Name())
	}
}
