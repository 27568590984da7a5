package store

import (
	"path/filepath"

	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/types"
)

// LinkStore materializes changes by symlinking the destination path to the
// repository-resident source. Anything already at the destination, file,
// link, or broken link, is removed first; symlink creation itself is a
// single filesystem operation so no temp-and-rename dance is needed.
type LinkStore struct {
	fsys types.FS
}

// NewLinkStore creates a link-mode store.
func NewLinkStore(fsys types.FS) *LinkStore {
	return &LinkStore{fsys: fsys}
}

func (s *LinkStore) Name() string {
	return "link"
}

// Exists uses Lstat so a broken symlink still counts as occupying the path.
func (s *LinkStore) Exists(path string) bool {
	_, err := s.fsys.Lstat(path)
	return err == nil
}

func (s *LinkStore) Read(path string) ([]byte, error) {
	data, err := s.fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	return data, nil
}

func (s *LinkStore) Remove(path string) error {
	if !s.Exists(path) {
		return nil
	}
	if err := s.fsys.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", path)
	}
	return nil
}

func (s *LinkStore) Materialize(source, destination string) error {
	parent := filepath.Dir(destination)
	if err := s.fsys.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", parent)
	}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot resolve %s", source)
	}

	if err := s.Remove(destination); err != nil {
		return err
	}
	if err := s.fsys.Symlink(absSource, destination); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink %s -> %s", destination, absSource)
	}
	return nil
}
