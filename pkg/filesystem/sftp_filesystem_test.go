package filesystem_test

import (
	"io"
	"io/fs"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/internal/testutil"
	"github.com/joe/filescan/pkg/filesystem"
)

func TestSFTPFileSystem_ReadDirSorted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	client := testutil.SFTPClient(t)
	testutil.WriteRemote(t, client, "/data/zeta.txt", "z")
	testutil.WriteRemote(t, client, "/data/alpha.txt", "a")
	testutil.WriteRemote(t, client, "/data/mid/inner.txt", "i")

	sfs := filesystem.NewSFTPFileSystemFromClient(client)

	infos, err := sfs.ReadDir("/data")
	g.Expect(err).ShouldNot(HaveOccurred())

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	g.Expect(names).To(Equal([]string{"alpha.txt", "mid", "zeta.txt"}))
}

func TestSFTPFileSystem_StatAndOpen(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	client := testutil.SFTPClient(t)
	testutil.WriteRemote(t, client, "/data/file.txt", "remote content")

	sfs := filesystem.NewSFTPFileSystemFromClient(client)

	info, err := sfs.Stat("/data/file.txt")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(info.Size()).To(Equal(int64(len("remote content"))))

	linfo, err := sfs.Lstat("/data/file.txt")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(linfo.Mode().IsRegular()).To(BeTrue())

	file, err := sfs.Open("/data/file.txt")
	g.Expect(err).ShouldNot(HaveOccurred())
	defer file.Close()

	data, err := io.ReadAll(file)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("remote content"))
}

func TestSFTPFileSystem_MissingPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sfs := filesystem.NewSFTPFileSystemFromClient(testutil.SFTPClient(t))

	_, err := sfs.Stat("/nope")
	g.Expect(err).To(MatchError(fs.ErrNotExist))
	g.Expect(err.Error()).To(ContainSubstring("/nope"))
}

func TestSFTPFileSystem_TimesHaveNoCreation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	client := testutil.SFTPClient(t)
	testutil.WriteRemote(t, client, "/data/file.txt", "x")

	times, err := filesystem.NewSFTPFileSystemFromClient(client).Times("/data/file.txt")
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(times.HasCreated).To(BeFalse())
	g.Expect(times.Modified.IsZero()).To(BeFalse())
}

func TestSFTPFileSystem_Join(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sfs := filesystem.NewSFTPFileSystemFromClient(testutil.SFTPClient(t))

	g.Expect(sfs.Join("/data", "sub", "file.txt")).To(Equal("/data/sub/file.txt"))
}
