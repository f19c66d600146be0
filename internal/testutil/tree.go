// Package testutil creates temporary file trees for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Tree is a temporary directory removed when the test ends.
type Tree struct {
	t    testing.TB
	Root string
}

// NewTree creates an empty temporary tree.
func NewTree(t testing.TB) *Tree {
	t.Helper()

	return &Tree{t: t, Root: t.TempDir()}
}

// TempFile writes content to a fresh file in its own temporary directory and
// returns the path.
func TempFile(t testing.TB, content string) string {
	t.Helper()

	return NewTree(t).File("test_file.txt", content)
}

// File writes content to rel (slash separated) under the root, creating
// parent directories, and returns the absolute path.
func (tr *Tree) File(rel, content string) string {
	tr.t.Helper()

	path := tr.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tr.t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		tr.t.Fatalf("Failed to create test file %s: %v", rel, err)
	}

	return path
}

// Dir creates rel under the root and returns the absolute path.
func (tr *Tree) Dir(rel string) string {
	tr.t.Helper()

	path := tr.Path(rel)
	if err := os.MkdirAll(path, 0o755); err != nil {
		tr.t.Fatalf("Failed to create directory %s: %v", rel, err)
	}

	return path
}

// Symlink creates a symlink at rel pointing to target.
func (tr *Tree) Symlink(target, rel string) string {
	tr.t.Helper()

	path := tr.Path(rel)
	if err := os.Symlink(target, path); err != nil {
		tr.t.Skipf("symlinks unavailable: %v", err)
	}

	return path
}

// Path returns the absolute path of rel without creating anything.
func (tr *Tree) Path(rel string) string {
	return filepath.Join(tr.Root, filepath.FromSlash(rel))
}
