// Package collection provides Collection, an ordered list of file entries.
package collection

import (
	"iter"
	"slices"
	"strings"

	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/fileentry"
)

// Collection is an ordered, append-only list of entries. Insertion order is
// preserved and the same path may appear more than once. A Collection is not
// safe for concurrent use.
type Collection struct {
	entries []*fileentry.Entry
}

// New returns a collection holding a fresh entry for each of entries' paths.
// The given entries are not shared with the collection. Nil entries are
// skipped.
func New(entries ...*fileentry.Entry) *Collection {
	c := &Collection{entries: make([]*fileentry.Entry, 0, len(entries))}
	for _, entry := range entries {
		if entry == nil {
			continue
		}

		c.entries = append(c.entries, fileentry.NewWithFileSystem(entry.FileSystem(), entry.Path()))
	}

	return c
}

// Append adds entry to the end. It never fails; whether the path exists is
// the entry's concern.
func (c *Collection) Append(entry *fileentry.Entry) {
	c.entries = append(c.entries, entry)
}

// AppendPath adds a new local-filesystem entry for path.
func (c *Collection) AppendPath(path string) {
	c.Append(fileentry.New(path))
}

// At returns the entry at index, or ErrOutOfBounds.
func (c *Collection) At(index int) (*fileentry.Entry, error) {
	if index < 0 || index >= len(c.entries) {
		return nil, errors.OutOfBounds(index, len(c.entries))
	}

	return c.entries[index], nil
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// ForEach calls fn for each entry in order until fn returns false. It
// reports whether every entry was visited.
func (c *Collection) ForEach(fn func(*fileentry.Entry) bool) bool {
	for _, entry := range c.entries {
		if !fn(entry) {
			return false
		}
	}

	return true
}

// All iterates over index and entry pairs in order.
func (c *Collection) All() iter.Seq2[int, *fileentry.Entry] {
	return func(yield func(int, *fileentry.Entry) bool) {
		for i, entry := range c.entries {
			if !yield(i, entry) {
				return
			}
		}
	}
}

// Paths returns the entry paths in order.
func (c *Collection) Paths() []string {
	paths := make([]string, len(c.entries))
	for i, entry := range c.entries {
		paths[i] = entry.Path()
	}

	return paths
}

// SortByPath orders entries alphabetically by full path. The sort is stable,
// so duplicate paths keep their relative order.
func (c *Collection) SortByPath() {
	slices.SortStableFunc(c.entries, func(a, b *fileentry.Entry) int {
		return strings.Compare(a.Path(), b.Path())
	})
}

// Take moves the contents into a new collection and leaves c empty. The
// entries themselves are handed over, not copied.
func (c *Collection) Take() *Collection {
	moved := &Collection{entries: c.entries}
	c.entries = nil

	return moved
}
