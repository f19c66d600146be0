package collection_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/pkg/collection"
	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/fileentry"
)

func TestCollection_Empty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var coll collection.Collection

	g.Expect(coll.Len()).To(Equal(0))
	g.Expect(coll.Paths()).To(BeEmpty())
	_, err := coll.At(0)
	g.Expect(err).To(MatchError(errors.ErrOutOfBounds))
}

func TestCollection_AppendKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New()
	paths := []string{"/z.txt", "/a.txt", "/m.txt", "/a.txt"}
	for _, p := range paths {
		coll.AppendPath(p)
	}

	g.Expect(coll.Len()).To(Equal(len(paths)))
	for i, p := range paths {
		entry, err := coll.At(i)
		g.Expect(err).ShouldNot(HaveOccurred())
		g.Expect(entry.Path()).To(Equal(p))
	}
}

func TestCollection_AppendMissingPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New()
	coll.Append(fileentry.New("/definitely/not/here"))

	g.Expect(coll.Len()).To(Equal(1))
}

func TestCollection_AtOutOfRange(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New(fileentry.New("/a"))

	_, err := coll.At(1)
	g.Expect(err).To(MatchError(errors.ErrOutOfBounds))

	_, err = coll.At(-1)
	g.Expect(err).To(MatchError(errors.ErrOutOfBounds))
}

func TestCollection_NewCopiesByPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	original := fileentry.New("/a.txt")
	coll := collection.New(original, fileentry.New("/b.txt"))

	first, err := coll.At(0)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(first).NotTo(BeIdenticalTo(original))

	original.SetPath("/changed.txt")
	g.Expect(first.Path()).To(Equal("/a.txt"))
	g.Expect(coll.Paths()).To(Equal([]string{"/a.txt", "/b.txt"}))
}

func TestCollection_ForEachCompletes(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New(fileentry.New("/a"), fileentry.New("/b"), fileentry.New("/c"))

	var seen []string
	completed := coll.ForEach(func(entry *fileentry.Entry) bool {
		seen = append(seen, entry.Path())
		return true
	})

	g.Expect(completed).To(BeTrue())
	g.Expect(seen).To(Equal([]string{"/a", "/b", "/c"}))
}

func TestCollection_ForEachStopsEarly(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New(fileentry.New("/a"), fileentry.New("/b"), fileentry.New("/c"))

	var seen []string
	completed := coll.ForEach(func(entry *fileentry.Entry) bool {
		seen = append(seen, entry.Path())
		return entry.Path() != "/b"
	})

	g.Expect(completed).To(BeFalse())
	g.Expect(seen).To(Equal([]string{"/a", "/b"}))
}

func TestCollection_AllStopsWithBreak(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New(fileentry.New("/a"), fileentry.New("/b"), fileentry.New("/c"))

	var indexes []int
	for i := range coll.All() {
		if i == 2 {
			break
		}
		indexes = append(indexes, i)
	}

	g.Expect(indexes).To(Equal([]int{0, 1}))
}

func TestCollection_TakeMovesEntries(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	source := collection.New(fileentry.New("/b"), fileentry.New("/a"))
	before, err := source.At(0)
	g.Expect(err).ShouldNot(HaveOccurred())

	moved := source.Take()

	g.Expect(source.Len()).To(Equal(0))
	g.Expect(moved.Paths()).To(Equal([]string{"/b", "/a"}))

	after, err := moved.At(0)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(after).To(BeIdenticalTo(before))

	// the emptied source is still usable
	source.AppendPath("/c")
	g.Expect(source.Len()).To(Equal(1))
	g.Expect(moved.Len()).To(Equal(2))
}

func TestCollection_SortByPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New()
	for _, p := range []string{"/folder2/subfile1.txt", "/folder1/file2.log", "/folder1/file1.txt"} {
		coll.AppendPath(p)
	}

	coll.SortByPath()

	g.Expect(coll.Paths()).To(Equal([]string{
		"/folder1/file1.txt",
		"/folder1/file2.log",
		"/folder2/subfile1.txt",
	}))
}

func TestCollection_NewSkipsNilEntries(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	coll := collection.New(fileentry.New("/a.txt"), nil, fileentry.New("/b.txt"))

	g.Expect(coll.Len()).To(Equal(2))
	g.Expect(coll.Paths()).To(Equal([]string{"/a.txt", "/b.txt"}))
}
