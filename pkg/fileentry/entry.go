// Package fileentry provides Entry, a handle on one filesystem path that
// answers metadata and content queries about it.
//
// An Entry keeps only its path and the FileSystem it resolves against.
// Every query goes to the filesystem at call time, so results reflect the
// current state of the path rather than the state at construction.
package fileentry

import (
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/filesystem"
)

// Entry is a handle on a filesystem path. It does not own the file.
type Entry struct {
	path string
	fs   filesystem.FileSystem
}

// New returns an Entry for path on the local filesystem. No I/O is performed.
func New(path string) *Entry {
	return NewWithFileSystem(nil, path)
}

// NewWithFileSystem returns an Entry for path on fsys. A nil fsys means the
// local filesystem. No I/O is performed.
func NewWithFileSystem(fsys filesystem.FileSystem, path string) *Entry {
	if fsys == nil {
		fsys = filesystem.NewRealFileSystem()
	}

	return &Entry{path: path, fs: fsys}
}

// Path returns the path of the entry.
func (e *Entry) Path() string {
	return e.path
}

// SetPath replaces the path of the entry.
func (e *Entry) SetPath(path string) {
	e.path = path
}

// FileSystem returns the filesystem the entry resolves against.
func (e *Entry) FileSystem() filesystem.FileSystem {
	return e.fs
}

// String returns the path.
func (e *Entry) String() string {
	return e.path
}

// Exists reports whether the path currently exists. It never fails; an
// empty path or any stat failure reports false.
func (e *Entry) Exists() bool {
	if e.path == "" {
		return false
	}

	_, err := e.fs.Stat(e.path)
	return err == nil
}

// Size returns the size in bytes. Directories have no byte size and fail
// with ErrIO.
func (e *Entry) Size() (int64, error) {
	info, err := e.stat("size")
	if err != nil {
		return 0, err
	}

	if info.IsDir() {
		return 0, errors.IO("size", e.path, errNotRegular)
	}

	return info.Size(), nil
}

// ModTime returns the last modification time.
func (e *Entry) ModTime() (time.Time, error) {
	info, err := e.stat("read modification time of")
	if err != nil {
		return time.Time{}, err
	}

	return info.ModTime(), nil
}

// AccessTime returns the last access time. It fails with ErrUnsupported
// where the filesystem does not supply one.
func (e *Entry) AccessTime() (time.Time, error) {
	times, err := e.times("read access time of")
	if err != nil {
		return time.Time{}, err
	}

	if !times.HasAccessed {
		return time.Time{}, errors.Unsupported("access time", e.path)
	}

	return times.Accessed, nil
}

// CreationTime returns the creation (birth) time. It fails with
// ErrUnsupported where the filesystem does not record one, rather than
// substituting the inode change time.
func (e *Entry) CreationTime() (time.Time, error) {
	times, err := e.times("read creation time of")
	if err != nil {
		return time.Time{}, err
	}

	if !times.HasCreated {
		return time.Time{}, errors.Unsupported("creation time", e.path)
	}

	return times.Created, nil
}

// Name returns the final path component. The path must exist.
func (e *Entry) Name() (string, error) {
	if _, err := e.stat("read name of"); err != nil {
		return "", err
	}

	return baseName(e.path), nil
}

// Extension returns the suffix of the name starting at its last dot, or ""
// when there is none. Dot-files such as ".bashrc" have no extension. The
// path must exist.
func (e *Entry) Extension() (string, error) {
	name, err := e.Name()
	if err != nil {
		return "", err
	}

	return Extension(name), nil
}

// Content reads the whole file.
func (e *Entry) Content() ([]byte, error) {
	if _, err := e.stat("read"); err != nil {
		return nil, err
	}

	file, err := e.fs.Open(e.path)
	if err != nil {
		return nil, errors.Classify("open", e.path, err)
	}

	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.IO("read", e.path, err)
	}

	return data, nil
}

// Lines returns the content split on newlines. A final newline does not
// produce a trailing empty line, and carriage returns are kept.
func (e *Entry) Lines() ([]string, error) {
	data, err := e.Content()
	if err != nil {
		return nil, err
	}

	return SplitLines(string(data)), nil
}

// Permissions returns the permission bits, following symlinks.
func (e *Entry) Permissions() (fs.FileMode, error) {
	info, err := e.stat("read permissions of")
	if err != nil {
		return 0, err
	}

	return info.Mode().Perm(), nil
}

// Type returns the coarse type of the entry itself; a symlink reports
// TypeSymlink rather than the type of its target.
func (e *Entry) Type() (Type, error) {
	if _, err := e.stat("read type of"); err != nil {
		return TypeOther, err
	}

	info, err := e.fs.Lstat(e.path)
	if err != nil {
		return TypeOther, errors.Classify("read type of", e.path, err)
	}

	return TypeOf(info.Mode()), nil
}

// SplitLines splits content on '\n'. It does not return a trailing empty
// string when content ends with a newline, and returns nil for "".
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, content[start:i])
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

// Extension returns the extension of a file name: the suffix from the last
// dot, "" when the name has no dot, starts with its only dot, or is "." or "..".
func Extension(name string) string {
	if name == "." || name == ".." {
		return ""
	}

	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}

	return name[i:]
}

func (e *Entry) stat(op string) (fs.FileInfo, error) {
	if e.path == "" {
		return nil, errors.NotFound(op, e.path, nil)
	}

	info, err := e.fs.Stat(e.path)
	if err != nil {
		return nil, errors.Classify(op, e.path, err)
	}

	return info, nil
}

func (e *Entry) times(op string) (filesystem.Times, error) {
	if _, err := e.stat(op); err != nil {
		return filesystem.Times{}, err
	}

	times, err := e.fs.Times(e.path)
	if err != nil {
		return filesystem.Times{}, errors.Classify(op, e.path, err)
	}

	return times, nil
}

// baseName handles both separators so remote slash paths work on Windows.
func baseName(p string) string {
	if strings.ContainsRune(p, '/') && filepath.Separator != '/' {
		return path.Base(p)
	}

	return filepath.Base(p)
}
