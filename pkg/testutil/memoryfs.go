// Package testutil provides the in-memory filesystem and metadata stubs the
// engine tests run on.
package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. Directory listings
// are returned in name order, like os.ReadDir.
type MemoryFS struct {
	mu    sync.RWMutex
	nodes map[string]*memNode

	// errorPaths injects errors for specific paths.
	errorPaths map[string]error
}

type memNode struct {
	name    string
	mode    fs.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates an in-memory filesystem containing only "/".
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		nodes: map[string]*memNode{
			"/": {name: "/", mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes any operation on path fail with err.
func (m *MemoryFS) InjectError(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

// WriteFile creates a file (and its parents) with the given content.
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.mkdirAllLocked(filepath.Dir(name), 0755); err != nil {
		return err
	}
	m.nodes[name] = &memNode{
		name:    filepath.Base(name),
		mode:    perm,
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	}
	return nil
}

func (m *MemoryFS) checkError(path string) error {
	if err, ok := m.errorPaths[filepath.Clean(path)]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) lookup(path string) (*memNode, error) {
	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return nil, err
	}
	node, ok := m.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return &memInfo{node: node}, nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	prefix := filepath.Clean(name)
	var entries []fs.DirEntry
	for path, node := range m.nodes {
		if path != prefix && filepath.Dir(path) == prefix {
			entries = append(entries, &memEntry{node: node})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), node.content...), nil
}

func (m *MemoryFS) Mkdir(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.checkError(path); err != nil {
		return err
	}
	if _, exists := m.nodes[path]; exists {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}
	if parent, ok := m.nodes[filepath.Dir(path)]; !ok || !parent.isDir {
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrNotExist}
	}
	m.nodes[path] = &memNode{name: filepath.Base(path), mode: perm | fs.ModeDir, modTime: time.Now(), isDir: true}
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mkdirAllLocked(path, perm)
}

func (m *MemoryFS) mkdirAllLocked(path string, perm fs.FileMode) error {
	path = filepath.Clean(path)
	if node, exists := m.nodes[path]; exists {
		if node.isDir {
			return nil
		}
		return &fs.PathError{Op: "mkdir", Path: path, Err: fs.ErrExist}
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	current := "/"
	for _, part := range parts {
		current = filepath.Join(current, part)
		if _, exists := m.nodes[current]; !exists {
			m.nodes[current] = &memNode{name: part, mode: perm | fs.ModeDir, modTime: time.Now(), isDir: true}
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldpath = filepath.Clean(oldpath)
	newpath = filepath.Clean(newpath)
	if err := m.checkError(oldpath); err != nil {
		return err
	}
	if err := m.checkError(newpath); err != nil {
		return err
	}
	node, ok := m.nodes[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if parent, ok := m.nodes[filepath.Dir(newpath)]; !ok || !parent.isDir {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrNotExist}
	}
	delete(m.nodes, oldpath)
	node.name = filepath.Base(newpath)
	m.nodes[newpath] = node
	return nil
}

func (m *MemoryFS) AppendFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.checkError(name); err != nil {
		return err
	}
	node, ok := m.nodes[name]
	if !ok {
		if parent, ok := m.nodes[filepath.Dir(name)]; !ok || !parent.isDir {
			return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		node = &memNode{name: filepath.Base(name), mode: perm, modTime: time.Now()}
		m.nodes[name] = node
	}
	node.content = append(node.content, data...)
	node.modTime = time.Now()
	return nil
}

// Exists reports whether a path is present.
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.nodes[filepath.Clean(path)]
	return ok
}

type memInfo struct {
	node *memNode
}

func (i *memInfo) Name() string       { return i.node.name }
func (i *memInfo) Size() int64        { return int64(len(i.node.content)) }
func (i *memInfo) Mode() fs.FileMode  { return i.node.mode }
func (i *memInfo) ModTime() time.Time { return i.node.modTime }
func (i *memInfo) IsDir() bool        { return i.node.isDir }
func (i *memInfo) Sys() interface{}   { return nil }

type memEntry struct {
	node *memNode
}

func (e *memEntry) Name() string               { return e.node.name }
func (e *memEntry) IsDir() bool                { return e.node.isDir }
func (e *memEntry) Type() fs.FileMode          { return e.node.mode.Type() }
func (e *memEntry) Info() (fs.FileInfo, error) { return &memInfo{node: e.node}, nil }
