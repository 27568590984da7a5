// Package store provides the two materialization strategies a sync can
// apply a change with: copying file contents into place or symlinking the
// destination back to the repository. The executor drives either through
// the same capability interface, so its batch loop does not branch on the
// mode.
package store

import (
	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/types"
)

// Store materializes accepted changes onto the destination tree.
type Store interface {
	// Name identifies the strategy in logs and reports
	Name() string

	// Exists reports whether anything occupies path, including a broken
	// symlink
	Exists(path string) bool

	// Read returns the content behind path, following symlinks
	Read(path string) ([]byte, error)

	// Remove deletes the file or link at path; missing paths are not an
	// error
	Remove(path string) error

	// Materialize places source's content at destination according to the
	// strategy, creating parent directories as needed
	Materialize(source, destination string) error
}

// New returns the store for a configured mode.
func New(mode config.Mode, fsys types.FS) Store {
	if mode == config.ModeLink {
		return NewLinkStore(fsys)
	}
	return NewFileStore(fsys)
}
