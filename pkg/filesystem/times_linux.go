//go:build linux

package filesystem

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// platformTimes uses statx, which reports birth time on kernels and
// filesystems that record it. Older kernels fall back to stat, which has
// no birth time.
func platformTimes(path string) (Times, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_MTIME|unix.STATX_ATIME|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return statTimes(path)
	}
	if err != nil {
		return Times{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	times := Times{
		Modified:    statxTime(stx.Mtime),
		Accessed:    statxTime(stx.Atime),
		HasAccessed: stx.Mask&unix.STATX_ATIME != 0,
	}

	if stx.Mask&unix.STATX_BTIME != 0 {
		times.Created = statxTime(stx.Btime)
		times.HasCreated = true
	}

	return times, nil
}

func statTimes(path string) (Times, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Times{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return Times{
		Modified:    time.Unix(st.Mtim.Unix()),
		Accessed:    time.Unix(st.Atim.Unix()),
		HasAccessed: true,
	}, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
