//go:build linux

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/pkg/filesystem"
)

func TestRealFileSystem_TimesLinux(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	g.Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())

	atime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	mtime := time.Date(2021, 6, 7, 8, 9, 10, 0, time.UTC)
	g.Expect(os.Chtimes(path, atime, mtime)).To(Succeed())

	times, err := filesystem.NewRealFileSystem().Times(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(times.HasAccessed).To(BeTrue())
	g.Expect(times.Accessed.Equal(atime)).To(BeTrue())
	g.Expect(times.Modified.Equal(mtime)).To(BeTrue())

	// birth time depends on the filesystem; when present it predates now
	if times.HasCreated {
		g.Expect(times.Created).To(BeTemporally("<=", time.Now()))
	}
}
