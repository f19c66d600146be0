package filesystem

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

const (
	sftpScheme      = "sftp://"
	defaultSFTPPort = 22
)

// ParsedPath represents either a local path or an SFTP URL.
type ParsedPath struct {
	IsRemote bool

	// For local paths
	LocalPath string

	// For SFTP paths
	Host string
	Port int
	User string
	Path string // Remote path
}

// ParsePath parses a scan root, detecting whether it's a local path or SFTP URL.
// SFTP URLs have the format: sftp://user@host:port/path/to/dir
// Port is optional (defaults to 22). An empty local path means ".".
// Examples:
//   - sftp://joe@myserver.com/home/joe/data
//   - sftp://joe@myserver.com:2222/backups
//   - /local/path/to/files (local path)
func ParsePath(path string) (*ParsedPath, error) {
	if strings.HasPrefix(path, sftpScheme) {
		return parseSFTPURL(path)
	}

	if path == "" {
		path = "."
	}

	return &ParsedPath{
		IsRemote:  false,
		LocalPath: path,
	}, nil
}

// String renders the location for messages: the local path, or
// user@host:port:path for remote locations.
func (p *ParsedPath) String() string {
	if !p.IsRemote {
		return p.LocalPath
	}

	return fmt.Sprintf("%s@%s:%s", p.User, net.JoinHostPort(p.Host, strconv.Itoa(p.Port)), p.Path)
}

// parseSFTPURL parses an SFTP URL into its components.
//
//nolint:cyclop // Complexity from comprehensive SFTP URL validation (scheme, user, host, port, path)
func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, errors.New("SFTP URL must include username (sftp://user@host/path)")
	}

	host := u.Hostname()
	if host == "" {
		return nil, errors.New("SFTP URL must include host")
	}

	port := defaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %w", err)
		}
		if p < 1 || p > 65535 {
			return nil, fmt.Errorf("port %d out of range", p)
		}
		port = p
	}

	// SFTP path convention:
	//   sftp://user@host/path  → relative to home directory (strip leading /)
	//   sftp://user@host//path → absolute path /path (strip one /)
	//   sftp://user@host       → home directory (.)
	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
		Path:     remotePath,
	}, nil
}
