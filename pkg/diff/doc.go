// Package diff computes line-level edit scripts between a destination and
// a source buffer, for previewing files a sync would overwrite. Scripts
// are computed lazily, only when a preview asks for one, and carry enough
// structure (operation, per-side line numbers, exact text) that the Equal
// and Delete lines reproduce the destination while the Equal and Insert
// lines reproduce the source.
package diff
