package filesystem

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over an SFTP session. Paths use
// forward slashes regardless of the local OS.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return NewSFTPFileSystemFromClient(conn.Client())
}

// NewSFTPFileSystemFromClient creates an SFTP filesystem over an existing
// client session. The caller keeps ownership of the client.
func NewSFTPFileSystemFromClient(client *sftp.Client) *SFTPFileSystem {
	return &SFTPFileSystem{client: client}
}

// Join joins path elements with forward slashes.
func (fs *SFTPFileSystem) Join(elem ...string) string {
	return fs.client.Join(elem...)
}

// Lstat returns information about a remote file without following symlinks.
func (fs *SFTPFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := fs.client.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// ReadDir lists a remote directory sorted by name; servers return entries
// in arbitrary order.
func (fs *SFTPFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	infos, err := fs.client.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name() < infos[j].Name()
	})

	return infos, nil
}

// Stat returns information about a remote file.
func (fs *SFTPFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// Times returns modification and access time. SFTP v3 carries no creation
// time, so HasCreated is always false.
func (fs *SFTPFileSystem) Times(path string) (Times, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return Times{}, err
	}

	times := Times{Modified: info.ModTime()}
	if stat, ok := info.Sys().(*sftp.FileStat); ok {
		times.Accessed = time.Unix(int64(stat.Atime), 0)
		times.HasAccessed = true
	}

	return times, nil
}
