package testutil

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It supports symlinks
// and per-path error injection so callers can exercise failure paths that
// are awkward to produce on a real filesystem.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*fileNode
	umask os.FileMode

	// Error injection
	errorPaths map[string]error
}

// fileNode represents a file, directory, or symlink in memory
type fileNode struct {
	mode     fs.FileMode
	modTime  time.Time
	content  []byte
	linkDest string
}

func (n *fileNode) isDir() bool  { return n.mode.IsDir() }
func (n *fileNode) isLink() bool { return n.mode&fs.ModeSymlink != 0 }

// NewMemoryFS creates a new in-memory filesystem with a root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*fileNode{
			"/": {mode: 0755 | fs.ModeDir, modTime: time.Now()},
		},
		umask:      0022,
		errorPaths: make(map[string]error),
	}
}

// WithError makes every operation on path fail with err
func (m *MemoryFS) WithError(p string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[normalize(p)] = err
	return m
}

func normalize(p string) string {
	if !filepath.IsAbs(p) {
		p = "/" + p
	}
	return filepath.Clean(p)
}

func (m *MemoryFS) injected(p string) error {
	if err, ok := m.errorPaths[p]; ok {
		return err
	}
	return nil
}

// resolve follows symlinks on the final path component
func (m *MemoryFS) resolve(p string) (string, *fileNode, error) {
	p = normalize(p)
	for depth := 0; depth < 40; depth++ {
		if err := m.injected(p); err != nil {
			return p, nil, err
		}
		node, ok := m.nodes[p]
		if !ok {
			return p, nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
		}
		if !node.isLink() {
			return p, node, nil
		}
		dest := node.linkDest
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(p), dest)
		}
		p = normalize(dest)
	}
	return p, nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid}
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, node, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	return newInfo(path.Base(p), node), nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := normalize(name)
	if err := m.injected(p); err != nil {
		return nil, err
	}
	node, ok := m.nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: p, Err: fs.ErrNotExist}
	}
	return newInfo(path.Base(p), node), nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, node, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	if node.isDir() {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(name)
	if err := m.injected(p); err != nil {
		return err
	}
	// Writes go through symlinks, as with os.WriteFile
	if node, ok := m.nodes[p]; ok && node.isLink() {
		var err error
		p, _, err = m.resolve(p)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok || !parent.isDir() {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	if existing, ok := m.nodes[p]; ok {
		if existing.isDir() {
			return &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid}
		}
		existing.content = content
		existing.modTime = time.Now()
		return nil
	}
	m.nodes[p] = &fileNode{
		mode:    perm &^ m.umask,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, node, err := m.resolve(name)
	if err != nil {
		return err
	}
	node.mode = (node.mode &^ fs.ModePerm) | (mode & fs.ModePerm)
	_ = p
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, node, err := m.resolve(name)
	if err != nil {
		return nil, err
	}
	if !node.isDir() {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrInvalid}
	}
	var names []string
	for candidate := range m.nodes {
		if candidate != p && filepath.Dir(candidate) == p {
			names = append(names, path.Base(candidate))
		}
	}
	sort.Strings(names)
	entries := make([]fs.DirEntry, 0, len(names))
	for _, n := range names {
		entries = append(entries, dirEntry{name: n, node: m.nodes[filepath.Join(p, n)]})
	}
	return entries, nil
}

func (m *MemoryFS) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = normalize(p)
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	current := "/"
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		current = filepath.Join(current, seg)
		if err := m.injected(current); err != nil {
			return err
		}
		if node, ok := m.nodes[current]; ok {
			if !node.isDir() {
				return &fs.PathError{Op: "mkdir", Path: current, Err: fs.ErrExist}
			}
			continue
		}
		m.nodes[current] = &fileNode{
			mode:    (perm &^ m.umask) | fs.ModeDir,
			modTime: time.Now(),
		}
	}
	return nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(newname)
	if err := m.injected(p); err != nil {
		return err
	}
	if _, ok := m.nodes[p]; ok {
		return &fs.PathError{Op: "symlink", Path: p, Err: fs.ErrExist}
	}
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok || !parent.isDir() {
		return &fs.PathError{Op: "symlink", Path: p, Err: fs.ErrNotExist}
	}
	m.nodes[p] = &fileNode{
		mode:     0777 | fs.ModeSymlink,
		modTime:  time.Now(),
		linkDest: oldname,
	}
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p := normalize(name)
	if err := m.injected(p); err != nil {
		return "", err
	}
	node, ok := m.nodes[p]
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: p, Err: fs.ErrNotExist}
	}
	if !node.isLink() {
		return "", &fs.PathError{Op: "readlink", Path: p, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := normalize(name)
	if err := m.injected(p); err != nil {
		return err
	}
	node, ok := m.nodes[p]
	if !ok {
		return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
	}
	if node.isDir() {
		for candidate := range m.nodes {
			if filepath.Dir(candidate) == p {
				return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrInvalid}
			}
		}
	}
	delete(m.nodes, p)
	return nil
}

func (m *MemoryFS) RemoveAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = normalize(p)
	if err := m.injected(p); err != nil {
		return err
	}
	delete(m.nodes, p)
	prefix := p + "/"
	for candidate := range m.nodes {
		if strings.HasPrefix(candidate, prefix) {
			delete(m.nodes, candidate)
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldp := normalize(oldpath)
	newp := normalize(newpath)
	if err := m.injected(oldp); err != nil {
		return err
	}
	if err := m.injected(newp); err != nil {
		return err
	}
	node, ok := m.nodes[oldp]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldp, Err: fs.ErrNotExist}
	}
	parent, ok := m.nodes[filepath.Dir(newp)]
	if !ok || !parent.isDir() {
		return &fs.PathError{Op: "rename", Path: newp, Err: fs.ErrNotExist}
	}
	delete(m.nodes, oldp)
	m.nodes[newp] = node
	if node.isDir() {
		prefix := oldp + "/"
		for candidate, child := range m.nodes {
			if strings.HasPrefix(candidate, prefix) {
				delete(m.nodes, candidate)
				m.nodes[filepath.Join(newp, strings.TrimPrefix(candidate, prefix))] = child
			}
		}
	}
	return nil
}

// Exists reports whether a node is present at path, without following links
func (m *MemoryFS) Exists(p string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[normalize(p)]
	return ok
}

// Paths returns all node paths, sorted, for test assertions
func (m *MemoryFS) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for p := range m.nodes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// fileInfo implements fs.FileInfo for memory nodes
type fileInfo struct {
	name string
	node *fileNode
}

func newInfo(name string, node *fileNode) fileInfo {
	return fileInfo{name: name, node: node}
}

func (f fileInfo) Name() string       { return f.name }
func (f fileInfo) Size() int64        { return int64(len(f.node.content)) }
func (f fileInfo) Mode() fs.FileMode  { return f.node.mode }
func (f fileInfo) ModTime() time.Time { return f.node.modTime }
func (f fileInfo) IsDir() bool        { return f.node.isDir() }
func (f fileInfo) Sys() interface{}   { return nil }

// dirEntry implements fs.DirEntry for memory nodes
type dirEntry struct {
	name string
	node *fileNode
}

func (d dirEntry) Name() string               { return d.name }
func (d dirEntry) IsDir() bool                { return d.node.isDir() }
func (d dirEntry) Type() fs.FileMode          { return d.node.mode.Type() }
func (d dirEntry) Info() (fs.FileInfo, error) { return newInfo(d.name, d.node), nil }
