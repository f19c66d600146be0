package testutil

import (
	"io"
	"testing"

	"github.com/pkg/sftp"
)

// SFTPClient returns a client connected over in-process pipes to an
// in-memory SFTP server. Both ends are closed when the test ends.
func SFTPClient(t testing.TB) *sftp.Client {
	t.Helper()

	clientReader, serverWriter := io.Pipe()
	serverReader, clientWriter := io.Pipe()

	server := sftp.NewRequestServer(struct {
		io.Reader
		io.WriteCloser
	}{serverReader, serverWriter}, sftp.InMemHandler())

	go func() {
		_ = server.Serve()
	}()

	client, err := sftp.NewClientPipe(clientReader, clientWriter)
	if err != nil {
		t.Fatalf("Failed to start in-memory SFTP session: %v", err)
	}

	// The server side closes first so the client's receive loop sees EOF.
	t.Cleanup(func() {
		_ = server.Close()
		_ = serverWriter.Close()
		_ = clientWriter.Close()
		_ = client.Close()
	})

	return client
}

// WriteRemote creates path on client, with parents, holding content.
func WriteRemote(t testing.TB, client *sftp.Client, path, content string) {
	t.Helper()

	if err := client.MkdirAll(client.Join(path, "..")); err != nil {
		t.Fatalf("Failed to create remote directory for %s: %v", path, err)
	}

	file, err := client.Create(path)
	if err != nil {
		t.Fatalf("Failed to create remote file %s: %v", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := file.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write remote file %s: %v", path, err)
	}
}
