// Package scanner walks directory trees and collects the files that match
// a rule into a caller-supplied destination.
//
// There is a single traversal routine. The depth (shallow or recursive),
// the rule (patterns, globs, extensions or an arbitrary predicate) and the
// destination (a plain slice or a collection) are parameters of it rather
// than separate code paths.
package scanner

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	krfs "github.com/kr/fs"

	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/fileentry"
	"github.com/joe/filescan/pkg/filesystem"
)

// Appender receives scan matches. *collection.Collection and *Entries both
// satisfy it.
type Appender interface {
	Append(entry *fileentry.Entry)
}

// Entries is a plain ordered destination.
type Entries []*fileentry.Entry

// Append adds entry to the end of the slice.
func (e *Entries) Append(entry *fileentry.Entry) {
	*e = append(*e, entry)
}

// Scanner walks a FileSystem. The zero value is not usable; build one with New.
// A Scanner holds no per-scan state and may be shared between goroutines as
// long as each scan has its own destination.
type Scanner struct {
	fs   filesystem.FileSystem
	dirs bool
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFileSystem scans fsys instead of the local filesystem.
func WithFileSystem(fsys filesystem.FileSystem) Option {
	return func(s *Scanner) {
		s.fs = fsys
	}
}

// WithDirectories makes directories eligible matches. By default only
// regular files, and symlinks resolving to regular files, are offered to
// the matcher; directories are traversal nodes.
func WithDirectories() Option {
	return func(s *Scanner) {
		s.dirs = true
	}
}

// New returns a Scanner for the local filesystem unless an option says otherwise.
func New(opts ...Option) Scanner {
	s := Scanner{}
	for _, opt := range opts {
		opt(&s)
	}

	if s.fs == nil {
		s.fs = filesystem.NewRealFileSystem()
	}

	return s
}

// Scan scans root on the local filesystem. See Scanner.Scan.
func Scan(root string, dst Appender, m Matcher, recursive bool) (int, error) {
	return New().Scan(root, dst, m, recursive)
}

// ScanPatterns scans root on the local filesystem with filename pattern
// rules. See Scanner.ScanPatterns.
func ScanPatterns(root string, dst Appender, rules []string, recursive bool) (int, error) {
	return New().ScanPatterns(root, dst, rules, recursive)
}

// FileSystem returns the filesystem the scanner walks.
func (s Scanner) FileSystem() filesystem.FileSystem {
	return s.fs
}

// ScanPatterns compiles rules and scans with them. A malformed rule fails
// with ErrInvalidPattern before anything is enumerated.
func (s Scanner) ScanPatterns(root string, dst Appender, rules []string, recursive bool) (int, error) {
	m, err := Patterns(rules...)
	if err != nil {
		return 0, err
	}

	return s.Scan(root, dst, m, recursive)
}

// Scan walks root and appends an entry to dst for every eligible item that
// m matches, in the enumeration order of the filesystem. A nil m matches
// everything. When recursive is false only the direct children of root are
// considered. dst is never cleared; the number of appended entries is
// returned.
//
// A root that does not exist or is not a directory yields no matches and
// no error. A directory that cannot be listed aborts the scan with ErrIO;
// matches appended before that point stay in dst.
func (s Scanner) Scan(root string, dst Appender, m Matcher, recursive bool) (int, error) {
	if m == nil {
		m = MatchAll
	}

	info, err := s.fs.Stat(root)
	switch {
	case err != nil && stderrors.Is(err, fs.ErrNotExist):
		return 0, nil
	case err != nil:
		return 0, errors.IO("scan", root, err)
	case !info.IsDir():
		return 0, nil
	}

	appended := 0
	base := s.fs.Join(root)
	walker := krfs.WalkFS(root, rootFollowing{FileSystem: s.fs, root: root})

	for walker.Step() {
		current := walker.Path()
		if err := walker.Err(); err != nil { //nolint:noinlineerr // Inline error check is idiomatic for walker error handling
			// the entry disappeared between listing and descent
			if current != root && stderrors.Is(err, fs.ErrNotExist) {
				continue
			}

			return appended, errors.IO("list", current, err)
		}

		// Skip the root directory itself
		if current == root {
			continue
		}

		stat := walker.Stat()
		if stat.IsDir() && !recursive {
			walker.SkipDir()
		}

		candidate, ok := s.candidate(base, current, stat)
		if !ok || !m.Match(candidate) {
			continue
		}

		dst.Append(fileentry.NewWithFileSystem(s.fs, current))
		appended++
	}

	return appended, nil
}

// candidate applies the eligibility policy to a walk item, resolving
// symlinks. Dangling or unreadable symlinks are not eligible.
func (s Scanner) candidate(base, path string, info os.FileInfo) (Candidate, bool) {
	if info.Mode()&fs.ModeSymlink != 0 {
		resolved, err := s.fs.Stat(path)
		if err != nil {
			return Candidate{}, false
		}

		info = resolved
	}

	switch {
	case info.Mode().IsRegular():
	case info.IsDir() && s.dirs:
	default:
		return Candidate{}, false
	}

	return Candidate{
		Path:         path,
		Name:         info.Name(),
		RelativePath: relativePath(base, path),
		Info:         info,
	}, true
}

// relativePath returns target below base with forward slashes. base is the
// cleaned scan root; walk paths are joined onto it, so the prefix is present.
func relativePath(base, target string) string {
	rel := target
	if base != "." {
		rel = strings.TrimPrefix(target, base)
	}
	rel = strings.TrimLeft(filepath.ToSlash(rel), "/")

	if rel == "" {
		return "."
	}

	return rel
}

// rootFollowing resolves the scan root with Stat, so a root that is a
// symlink to a directory is descended into. Every other item keeps Lstat
// semantics, and symlinked subdirectories are never followed.
type rootFollowing struct {
	filesystem.FileSystem
	root string
}

func (f rootFollowing) Lstat(path string) (os.FileInfo, error) {
	if path == f.root {
		return f.FileSystem.Stat(path) //nolint:wrapcheck // Passed straight to the walker
	}

	return f.FileSystem.Lstat(path) //nolint:wrapcheck // Passed straight to the walker
}
