// Package formatters renders file metadata for display.
package formatters

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"
)

// TimeLayout is the layout used by FormatTime.
const TimeLayout = "2006-01-02 15:04:05"

// FormatBytes formats a byte count with binary units (e.g. "1.5 MiB").
// Negative counts are shown as "-".
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-"
	}

	return humanize.IBytes(uint64(bytes))
}

// FormatDuration formats a duration into e.g. "2m 30s". Durations under a
// second keep millisecond precision, since most scans finish that fast.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return duration.Round(time.Millisecond).String()
	}

	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// FormatMode formats mode the way ls does, e.g. "drwxr-xr-x".
func FormatMode(mode fs.FileMode) string {
	return mode.String()
}

// FormatTime formats t in local time using TimeLayout. The zero time is
// shown as "-".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format(TimeLayout)
}

// FormatRelativeTime formats t relative to now, e.g. "3 hours ago".
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return humanize.Time(t)
}
