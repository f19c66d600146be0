//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

func platformTimes(path string) (Times, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Times{}, err
	}

	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return Times{Modified: info.ModTime()}, nil
	}

	return Times{
		Modified:    info.ModTime(),
		Accessed:    time.Unix(0, data.LastAccessTime.Nanoseconds()),
		Created:     time.Unix(0, data.CreationTime.Nanoseconds()),
		HasAccessed: true,
		HasCreated:  true,
	}, nil
}
