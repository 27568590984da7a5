package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/ignore"
	"github.com/arthur-debert/doot/pkg/logging"
	"github.com/arthur-debert/doot/pkg/types"
)

// Scan enumerates the files under root, skipping paths the matcher ignores.
// Entries come back sorted lexicographically by relative path so downstream
// classification and previews are stable across runs. Per-path read
// failures are collected as warnings rather than aborting the walk; a
// missing root yields no entries and no error (the destination side of a
// first sync typically does not exist yet).
func Scan(fsys types.FS, root string, matcher *ignore.Matcher) ([]types.FileEntry, []types.Warning, error) {
	logger := logging.GetLogger("scanner")

	if _, err := fsys.Lstat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, errors.Wrapf(err, errors.ErrIO, "cannot access %s", root)
	}

	w := &walker{fsys: fsys, root: root, matcher: matcher}
	w.walk(root, "")

	sort.Slice(w.entries, func(i, j int) bool {
		return w.entries[i].Path < w.entries[j].Path
	})

	logger.Debug().
		Str("root", root).
		Int("entries", len(w.entries)).
		Int("warnings", len(w.warnings)).
		Msg("Scan completed")

	return w.entries, w.warnings, nil
}

type walker struct {
	fsys     types.FS
	root     string
	matcher  *ignore.Matcher
	entries  []types.FileEntry
	warnings []types.Warning
}

func (w *walker) warn(rel string, err error) {
	w.warnings = append(w.warnings, types.Warning{
		Path: rel,
		Err:  errors.Wrapf(err, errors.ErrIO, "cannot read %s", rel),
	})
}

func (w *walker) walk(dir, rel string) {
	dirEntries, err := w.fsys.ReadDir(dir)
	if err != nil {
		w.warn(relOrRoot(rel), err)
		return
	}

	for _, de := range dirEntries {
		name := de.Name()
		entryRel := path.Join(rel, name)
		entryAbs := filepath.Join(dir, name)

		switch {
		case de.Type()&fs.ModeSymlink != 0:
			w.visitSymlink(entryAbs, entryRel)
		case de.IsDir():
			if w.matcher.Matches(entryRel, true) {
				continue
			}
			w.walk(entryAbs, entryRel)
		default:
			w.visitFile(entryAbs, entryRel)
		}
	}
}

func (w *walker) visitFile(abs, rel string) {
	if w.matcher.Matches(rel, false) {
		return
	}
	fp, err := Fingerprint(w.fsys, abs)
	if err != nil {
		w.warn(rel, err)
		return
	}
	w.entries = append(w.entries, types.FileEntry{
		Path:        rel,
		Fingerprint: fp,
		Kind:        types.KindFile,
	})
}

func (w *walker) visitSymlink(abs, rel string) {
	if w.matcher.Matches(rel, false) {
		return
	}

	target, err := w.fsys.Readlink(abs)
	if err != nil {
		w.warn(rel, err)
		return
	}
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(abs), resolved)
	}
	resolved = filepath.Clean(resolved)

	// A symlink whose target is its own ancestor would recurse forever
	if isAncestor(resolved, abs) {
		logger := logging.GetLogger("scanner")
		logger.Debug().
			Str("path", rel).
			Str("target", resolved).
			Msg("Skipping symlink to ancestor")
		return
	}

	info, err := w.fsys.Stat(abs)
	if err != nil {
		// Broken link
		w.warn(rel, err)
		return
	}
	if info.IsDir() {
		return
	}

	fp, err := Fingerprint(w.fsys, abs)
	if err != nil {
		w.warn(rel, err)
		return
	}
	w.entries = append(w.entries, types.FileEntry{
		Path:        rel,
		Fingerprint: fp,
		Kind:        types.KindSymlink,
	})
}

// Fingerprint computes the content identity of a file as "sha256:<hex>".
// Symlinks are read through, so a link fingerprints the same as the file
// it points at.
func Fingerprint(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
	}
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}

func isAncestor(dir, p string) bool {
	return dir == p || strings.HasPrefix(p, dir+string(filepath.Separator))
}

func relOrRoot(rel string) string {
	if rel == "" {
		return "."
	}
	return rel
}
