package types

// FileKind distinguishes regular files from symlinks in scan results.
type FileKind string

const (
	KindFile    FileKind = "file"
	KindSymlink FileKind = "symlink"
)

// FileEntry is one file found by a tree scan. Path is slash-normalized and
// relative to the scanned root. Fingerprint is a content identity of the
// form "sha256:<hex>"; for symlinks it covers the link target's content so
// a correct link compares equal to the file it points at.
type FileEntry struct {
	Path        string
	Fingerprint string
	Kind        FileKind
}

// Warning records a per-path failure that did not abort the operation that
// produced it, such as an unreadable file during a tree scan.
type Warning struct {
	Path string
	Err  error
}
