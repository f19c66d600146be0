package filesystem_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/pkg/filesystem"
)

func TestRealFileSystem_ReadDirSortedByName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	for _, name := range []string{"c.txt", "a.txt", "b.log"} {
		g.Expect(os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644)).To(Succeed())
	}
	g.Expect(os.Mkdir(filepath.Join(dir, "sub"), 0o755)).To(Succeed())

	infos, err := filesystem.NewRealFileSystem().ReadDir(dir)
	g.Expect(err).ShouldNot(HaveOccurred())

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	g.Expect(names).To(Equal([]string{"a.txt", "b.log", "c.txt", "sub"}))
}

func TestRealFileSystem_ErrorsKeepNotExist(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys := filesystem.NewRealFileSystem()
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := fsys.Stat(missing)
	g.Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())

	_, err = fsys.Lstat(missing)
	g.Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())

	_, err = fsys.ReadDir(missing)
	g.Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())

	_, err = fsys.Open(missing)
	g.Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())

	_, err = fsys.Times(missing)
	g.Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
}

func TestRealFileSystem_OpenAndRead(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	g.Expect(os.WriteFile(path, []byte("hello"), 0o644)).To(Succeed())

	file, err := filesystem.NewRealFileSystem().Open(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("hello"))

	info, err := file.Stat()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(info.Size()).To(Equal(int64(5)))
}

func TestRealFileSystem_TimesHasModified(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	path := filepath.Join(t.TempDir(), "data.txt")
	g.Expect(os.WriteFile(path, []byte("x"), 0o644)).To(Succeed())

	info, err := os.Stat(path)
	g.Expect(err).ShouldNot(HaveOccurred())

	times, err := filesystem.NewRealFileSystem().Times(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(times.Modified.Equal(info.ModTime())).To(BeTrue())
}

func TestRealFileSystem_Join(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(filesystem.NewRealFileSystem().Join("a", "b", "c.txt")).To(Equal(filepath.Join("a", "b", "c.txt")))
}

func TestCreateFileSystem_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fsys, base, closer, err := filesystem.CreateFileSystem("/var/data")
	g.Expect(err).ShouldNot(HaveOccurred())
	defer closer()

	g.Expect(fsys).To(BeAssignableToTypeOf(&filesystem.RealFileSystem{}))
	g.Expect(base).To(Equal("/var/data"))
}

func TestCreateFileSystem_InvalidURL(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, _, err := filesystem.CreateFileSystem("sftp://host-without-user/path")
	g.Expect(err).Should(HaveOccurred())
	g.Expect(err.Error()).To(ContainSubstring("username"))
}
