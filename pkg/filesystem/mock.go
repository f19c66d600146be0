package filesystem

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory filesystem implementation for testing.
// It also lets tests inject failures that are hard to provoke on a real
// disk, such as a directory that cannot be listed.
type MockFileSystem struct {
	mu       sync.RWMutex
	files    map[string]*mockFile
	failures map[string]map[string]error
}

// mockFile represents a file in the mock filesystem.
type mockFile struct {
	path       string
	data       []byte
	modTime    time.Time
	accessTime time.Time
	createTime time.Time
	isDir      bool
	perm       os.FileMode
}

// mockFileInfo implements os.FileInfo for mock files.
type mockFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
	perm    os.FileMode
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return fi.size }
func (fi *mockFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.isDir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return fi.perm | os.ModeDir
	}

	return fi.perm
}

// mockFileHandle implements the File interface for reading.
type mockFileHandle struct {
	info   *mockFileInfo
	reader *bytes.Reader
	closed bool
}

func (f *mockFileHandle) Read(p []byte) (int, error) {
	if f.closed {
		return 0, os.ErrClosed
	}

	return f.reader.Read(p)
}

func (f *mockFileHandle) Close() error {
	if f.closed {
		return os.ErrClosed
	}
	f.closed = true

	return nil
}

func (f *mockFileHandle) Stat() (os.FileInfo, error) {
	if f.closed {
		return nil, os.ErrClosed
	}

	return f.info, nil
}

// Operations that can be made to fail with FailOn.
const (
	OpOpen    = "open"
	OpReadDir = "readdir"
	OpStat    = "stat"
	OpTimes   = "times"
)

// NewMockFileSystem creates a new in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string]*mockFile),
		failures: make(map[string]map[string]error),
	}
}

// Join joins path elements like filepath.Join.
func (fs *MockFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information. The mock has no symlinks, so it is Stat.
func (fs *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	return fs.Stat(path)
}

// Open opens a file for reading.
func (fs *MockFileSystem) Open(path string) (File, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpOpen, path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	if file.isDir {
		return nil, fmt.Errorf("open %s: is a directory", path)
	}

	return &mockFileHandle{
		info:   file.info(),
		reader: bytes.NewReader(file.data),
	}, nil
}

// ReadDir returns the direct children of path sorted by name.
func (fs *MockFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpReadDir, path); err != nil {
		return nil, err
	}

	dir, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "readdir", Path: path, Err: os.ErrNotExist}
	}

	if !dir.isDir {
		return nil, fmt.Errorf("readdir %s: not a directory", path)
	}

	var infos []os.FileInfo
	for p, file := range fs.files {
		if p != path && filepath.Dir(p) == path {
			infos = append(infos, file.info())
		}
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	return infos, nil
}

// Stat returns file information.
func (fs *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpStat, path); err != nil {
		return nil, err
	}

	file, exists := fs.files[path]
	if !exists {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}

	return file.info(), nil
}

// Times returns the stored timestamps. Every mock entry has all three.
func (fs *MockFileSystem) Times(path string) (Times, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if err := fs.failureLocked(OpTimes, path); err != nil {
		return Times{}, err
	}

	file, exists := fs.files[path]
	if !exists {
		return Times{}, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}

	return Times{
		Modified:    file.modTime,
		Accessed:    file.accessTime,
		Created:     file.createTime,
		HasAccessed: true,
		HasCreated:  true,
	}, nil
}

// Remove removes a file or empty directory.
func (fs *MockFileSystem) Remove(path string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path]
	if !exists {
		return os.ErrNotExist
	}

	// If it's a directory, check if it's empty
	if file.isDir {
		for p := range fs.files {
			if strings.HasPrefix(p, path+"/") {
				return fmt.Errorf("directory not empty")
			}
		}
	}

	delete(fs.files, path)
	return nil
}

// Chtimes changes the access and modification times of a file.
func (fs *MockFileSystem) Chtimes(path string, atime, mtime time.Time) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	file, exists := fs.files[path]
	if !exists {
		return os.ErrNotExist
	}

	file.accessTime = atime
	file.modTime = mtime
	return nil
}

// Helper methods for testing

// AddFile adds a file to the mock filesystem with the given content and modtime.
// Access and creation time start out equal to modTime.
func (fs *MockFileSystem) AddFile(path string, content []byte, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.mkdirAllLocked(filepath.Dir(path), modTime)

	fs.files[path] = &mockFile{
		path:       path,
		data:       append([]byte(nil), content...),
		modTime:    modTime,
		accessTime: modTime,
		createTime: modTime,
		isDir:      false,
		perm:       0o644,
	}
}

// AddDir adds a directory, and any missing parents, to the mock filesystem.
func (fs *MockFileSystem) AddDir(path string, modTime time.Time) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.mkdirAllLocked(path, modTime)
}

// SetPerm replaces the permission bits of an existing entry.
func (fs *MockFileSystem) SetPerm(path string, perm os.FileMode) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if file, exists := fs.files[path]; exists {
		file.perm = perm.Perm()
	}
}

// FailOn makes op on path return err until cleared with a nil err.
func (fs *MockFileSystem) FailOn(op, path string, err error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err == nil {
		delete(fs.failures[op], path)
		return
	}

	if fs.failures[op] == nil {
		fs.failures[op] = make(map[string]error)
	}
	fs.failures[op][path] = err
}

// Exists checks if a path exists in the mock filesystem.
func (fs *MockFileSystem) Exists(path string) bool {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	_, exists := fs.files[path]
	return exists
}

// ListFiles returns all paths in the mock filesystem.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	paths := make([]string, 0, len(fs.files))
	for p := range fs.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (fs *MockFileSystem) failureLocked(op, path string) error {
	return fs.failures[op][path]
}

// mkdirAllLocked creates path and its parents; the lock must be held.
func (fs *MockFileSystem) mkdirAllLocked(path string, modTime time.Time) {
	if path == "." || path == "" {
		return
	}

	parent := filepath.Dir(path)
	if parent != path {
		fs.mkdirAllLocked(parent, modTime)
	}

	if _, exists := fs.files[path]; !exists {
		fs.files[path] = &mockFile{
			path:       path,
			modTime:    modTime,
			accessTime: modTime,
			createTime: modTime,
			isDir:      true,
			perm:       0o755,
		}
	}
}

func (f *mockFile) info() *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(f.path),
		size:    int64(len(f.data)),
		modTime: f.modTime,
		isDir:   f.isDir,
		perm:    f.perm,
	}
}
