// Package filesystem provides the filesystem capability the file handles and
// the scanner depend on, so they work the same against local disks, SFTP
// servers and in-memory trees in tests.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// File is an interface that abstracts a file opened for reading.
type File interface {
	io.Reader
	io.Closer
	Stat() (os.FileInfo, error)
}

// FileSystem is an interface that abstracts the read-only filesystem operations
// used by this module.
//
// ReadDir, Lstat and Join make every FileSystem a github.com/kr/fs FileSystem,
// so trees can be walked with fs.WalkFS.
type FileSystem interface {
	// Stat returns file information, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Lstat returns file information without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir returns the entries of a directory sorted by name.
	ReadDir(path string) ([]os.FileInfo, error)

	// Open opens a file for reading.
	Open(path string) (File, error)

	// Join joins path elements using the filesystem's separator.
	Join(elem ...string) string

	// Times returns the timestamps the backend can supply for path.
	Times(path string) (Times, error)
}

// Times holds the timestamps of a filesystem entry. Access and creation
// times are not available everywhere; the Has fields report whether the
// corresponding value was supplied by the platform.
type Times struct {
	Modified time.Time
	Accessed time.Time
	Created  time.Time

	HasAccessed bool
	HasCreated  bool
}

// RealFileSystem implements FileSystem using actual os/filepath functions.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Join joins path elements with the OS separator.
func (fs *RealFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Lstat returns file information without following symlinks.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Open opens a file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// ReadDir returns the entries of a directory sorted by name. Entries removed
// between listing and stat are skipped.
func (fs *RealFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", filepath.Join(path, entry.Name()), err)
		}

		infos = append(infos, info)
	}

	// os.ReadDir already sorts, keep the contract explicit
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	return infos, nil
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// Times returns the timestamps the platform records for path.
func (fs *RealFileSystem) Times(path string) (Times, error) {
	times, err := platformTimes(path)
	if err != nil {
		return Times{}, fmt.Errorf("failed to read times for %s: %w", path, err)
	}

	return times, nil
}
