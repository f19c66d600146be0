//go:build darwin || freebsd

package filesystem

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func platformTimes(path string) (Times, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Times{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return Times{
		Modified:    time.Unix(st.Mtim.Unix()),
		Accessed:    time.Unix(st.Atim.Unix()),
		Created:     time.Unix(st.Btim.Unix()),
		HasAccessed: true,
		HasCreated:  true,
	}, nil
}
