package filesystem

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SFTPConnection holds an active SSH/SFTP connection.
type SFTPConnection struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	host       string
	port       int
	user       string
}

// Connect establishes an SSH connection and opens an SFTP session.
// It authenticates with the SSH agent and the default SSH keys, and
// verifies the host key against ~/.ssh/known_hosts.
func Connect(host string, port int, user string) (*SFTPConnection, error) {
	authMethods := getSSHAuthMethods()
	if len(authMethods) == 0 {
		return nil, errors.New("no SSH authentication methods available (tried SSH agent and default keys)")
	}

	hostKeyCallback, err := knownHostsCallback()
	if err != nil {
		return nil, fmt.Errorf("failed to load known hosts: %w", err)
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	sshClient, err := ssh.Dial("tcp", addr, config)
	if err != nil {
		return nil, fmt.Errorf("SSH connection failed: %w", err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("SFTP session creation failed: %w", err)
	}

	return &SFTPConnection{
		sshClient:  sshClient,
		sftpClient: sftpClient,
		host:       host,
		port:       port,
		user:       user,
	}, nil
}

// Client returns the underlying SFTP client.
func (c *SFTPConnection) Client() *sftp.Client {
	return c.sftpClient
}

// Close closes the SFTP session and SSH connection.
func (c *SFTPConnection) Close() error {
	var firstErr error

	if c.sftpClient != nil {
		if err := c.sftpClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.sshClient != nil {
		if err := c.sshClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// String describes the connection as user@host:port.
func (c *SFTPConnection) String() string {
	return fmt.Sprintf("%s@%s", c.user, net.JoinHostPort(c.host, strconv.Itoa(c.port)))
}

// getSSHAuthMethods returns SSH authentication methods in priority order:
// 1. SSH agent
// 2. Default SSH keys
func getSSHAuthMethods() []ssh.AuthMethod {
	var authMethods []ssh.AuthMethod

	if agentAuth := trySSHAgent(); agentAuth != nil {
		authMethods = append(authMethods, agentAuth)
	}

	return append(authMethods, tryDefaultSSHKeys()...)
}

// knownHostsCallback verifies host keys with the user's known_hosts file.
func knownHostsCallback() (ssh.HostKeyCallback, error) {
	sshDir, err := userSSHDir()
	if err != nil {
		return nil, err
	}

	return knownhosts.New(filepath.Join(sshDir, "known_hosts"))
}

// trySSHAgent attempts to connect to the SSH agent.
func trySSHAgent() ssh.AuthMethod {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil
	}

	agentClient := agent.NewClient(conn)
	return ssh.PublicKeysCallback(agentClient.Signers)
}

// tryDefaultSSHKeys loads unencrypted keys from the default locations.
func tryDefaultSSHKeys() []ssh.AuthMethod {
	sshDir, err := userSSHDir()
	if err != nil {
		return nil
	}

	keyFiles := []string{
		filepath.Join(sshDir, "id_ed25519"),
		filepath.Join(sshDir, "id_rsa"),
		filepath.Join(sshDir, "id_ecdsa"),
	}

	var authMethods []ssh.AuthMethod

	for _, keyPath := range keyFiles {
		keyData, err := os.ReadFile(keyPath) // #nosec G304 - fixed key locations
		if err != nil {
			continue
		}

		// password-protected keys are skipped
		signer, err := ssh.ParsePrivateKey(keyData)
		if err != nil {
			continue
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	return authMethods
}

func userSSHDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}

	return filepath.Join(homeDir, ".ssh"), nil
}
