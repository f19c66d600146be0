package fileentry

import (
	"errors"
	"io/fs"
)

// Type is a coarse classification of a filesystem entry.
type Type int

const (
	// TypeOther covers devices, sockets, pipes and anything unrecognized.
	TypeOther Type = iota
	// TypeRegular is a regular file.
	TypeRegular
	// TypeDirectory is a directory.
	TypeDirectory
	// TypeSymlink is a symbolic link.
	TypeSymlink
)

var errNotRegular = errors.New("not a regular file")

// TypeOf classifies a file mode.
func TypeOf(mode fs.FileMode) Type {
	switch {
	case mode.IsRegular():
		return TypeRegular
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	default:
		return TypeOther
	}
}

// String returns the string representation of Type
func (t Type) String() string {
	switch t {
	case TypeRegular:
		return "regular"
	case TypeDirectory:
		return "directory"
	case TypeSymlink:
		return "symlink"
	case TypeOther:
		return "other"
	default:
		return "unknown"
	}
}
