package plan

import (
	"path/filepath"

	"github.com/arthur-debert/doot/pkg/types"
)

// Classify merge-joins two path-sorted, ignore-filtered entry lists into
// an ordered change list. Every source path appears in exactly one change:
// source-only paths become Create, paths present on both sides become Same
// or Overwrite by fingerprint comparison. Destination-only paths are not
// part of the result; doot never deletes.
func Classify(source, destination []types.FileEntry, sourceRoot, destRoot string) []Change {
	changes := make([]Change, 0, len(source))

	var si, di int
	for si < len(source) {
		src := source[si]

		// Advance past destination-only paths; they are left untouched
		for di < len(destination) && destination[di].Path < src.Path {
			di++
		}

		change := Change{
			Path:        src.Path,
			Source:      filepath.Join(sourceRoot, filepath.FromSlash(src.Path)),
			Destination: filepath.Join(destRoot, filepath.FromSlash(src.Path)),
		}

		if di < len(destination) && destination[di].Path == src.Path {
			dst := destination[di]
			switch {
			case src.Fingerprint == dst.Fingerprint:
				change.Kind = Same
			default:
				change.Kind = Overwrite
				change.TypeMismatch = src.Kind != dst.Kind
			}
			di++
		} else {
			change.Kind = Create
		}

		changes = append(changes, change)
		si++
	}

	return changes
}
