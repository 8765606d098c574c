package testutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection
	errorPaths      map[string]error
	writeErrorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

// fileNode represents a file or directory in memory
type fileNode struct {
	name    string
	mode    os.FileMode
	modTime time.Time
	content []byte
	isDir   bool
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:    "/",
		mode:    0755 | os.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}

	return &MemoryFS{
		files:           map[string]*fileNode{"/": root},
		errorPaths:      make(map[string]error),
		writeErrorPaths: make(map[string]error),
	}
}

// normalizePath converts a path to absolute, cleaned form
func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = "/" + path
	}
	return filepath.Clean(path)
}

// getNode retrieves a node at the given path
func (m *MemoryFS) getNode(path string) (*fileNode, error) {
	path = m.normalizePath(path)

	// Check for injected errors
	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	return node, nil
}

// Stat returns file info
func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.readCount++

	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}

	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	// Return a copy to prevent mutation
	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// WriteFile writes data to a file, creating it if necessary
func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeCount++

	path := m.normalizePath(name)

	// Check for injected errors
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	if err, ok := m.writeErrorPaths[path]; ok {
		return err
	}

	existing, exists := m.files[path]
	if exists && existing.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: errors.New("is a directory")}
	}

	mode := perm
	if exists {
		// Rewriting never changes the mode of an existing file
		mode = existing.mode
	}

	m.files[path] = &fileNode{
		name:    filepath.Base(path),
		mode:    mode,
		modTime: time.Now(),
		content: append([]byte(nil), data...),
	}

	return nil
}

// OpenAppend opens a file for appending. Injected open errors apply
// here; injected write errors apply to the returned writer.
func (m *MemoryFS) OpenAppend(name string, create bool, perm fs.FileMode) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(name)

	if err, ok := m.errorPaths[path]; ok {
		return nil, err
	}

	node, exists := m.files[path]
	if exists && node.isDir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errors.New("is a directory")}
	}
	if !exists {
		if !create {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		node = &fileNode{
			name:    filepath.Base(path),
			mode:    perm,
			modTime: time.Now(),
		}
		m.files[path] = node
	}

	return &appendWriter{fs: m, path: path, node: node}, nil
}

// appendWriter appends writes to a MemoryFS file node
type appendWriter struct {
	fs   *MemoryFS
	path string
	node *fileNode
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	if err, ok := w.fs.writeErrorPaths[w.path]; ok {
		return 0, err
	}

	w.fs.writeCount++
	w.node.content = append(w.node.content, p...)
	w.node.modTime = time.Now()
	return len(p), nil
}

func (w *appendWriter) Close() error {
	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)

	current := "/"
	for _, part := range splitPath(path) {
		current = filepath.Join(current, part)
		if node, exists := m.files[current]; exists {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: current, Err: errors.New("not a directory")}
			}
			continue
		}
		m.files[current] = &fileNode{
			name:    part,
			mode:    perm | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}

	return nil
}

// Exists reports whether a path is present, ignoring injected errors
func (m *MemoryFS) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[m.normalizePath(name)]
	return ok
}

// WithError configures the filesystem to return an error for a specific path
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.errorPaths[m.normalizePath(path)] = err
	return m
}

// WithWriteError configures the filesystem to fail writes to a path
// while leaving reads and stats working. Models a file that opens but
// cannot be written.
func (m *MemoryFS) WithWriteError(path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writeErrorPaths[m.normalizePath(path)] = err
	return m
}

// Stats returns filesystem operation statistics
func (m *MemoryFS) Stats() (reads, writes int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readCount, m.writeCount
}

// splitPath breaks an absolute path into its non-empty components
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// fileInfo implements fs.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }
