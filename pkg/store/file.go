package store

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/types"
)

// FileStore materializes changes by copying content. Writes go to a
// temporary name in the destination's directory and are renamed into
// place, so a crash mid-write never leaves a half-written destination.
type FileStore struct {
	fsys types.FS
}

// NewFileStore creates a copy-mode store.
func NewFileStore(fsys types.FS) *FileStore {
	return &FileStore{fsys: fsys}
}

func (s *FileStore) Name() string {
	return "file"
}

func (s *FileStore) Exists(path string) bool {
	_, err := s.fsys.Stat(path)
	return err == nil
}

func (s *FileStore) Read(path string) ([]byte, error) {
	data, err := s.fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return data, nil
}

func (s *FileStore) Remove(path string) error {
	if !s.Exists(path) {
		return nil
	}
	if err := s.fsys.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", path)
	}
	return nil
}

func (s *FileStore) Materialize(source, destination string) error {
	content, err := s.fsys.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", source)
	}

	perm := fs.FileMode(0644)
	if info, err := s.fsys.Stat(source); err == nil {
		perm = info.Mode().Perm()
	}

	parent := filepath.Dir(destination)
	if err := s.fsys.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", parent)
	}

	// Write-then-rename keeps the destination whole if the write fails
	tmp := filepath.Join(parent, fmt.Sprintf(".%s.doot-%d.tmp", filepath.Base(destination), os.Getpid()))
	if err := s.fsys.WriteFile(tmp, content, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", tmp)
	}
	if err := s.fsys.Rename(tmp, destination); err != nil {
		_ = s.fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to rename %s into place", destination)
	}
	if err := s.fsys.Chmod(destination, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to set permissions on %s", destination)
	}
	return nil
}
