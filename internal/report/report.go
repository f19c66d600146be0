// Package report renders scan results as a plain listing for non-interactive use.
package report

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/filescan/pkg/collection"
	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/fileentry"
	"github.com/joe/filescan/pkg/formatters"
)

// Row is the display form of one entry.
type Row struct {
	Path     string
	Modified string
	Size     string
	Mode     string
	Bytes    int64
	Lines    []string
	// Err is set when the entry could not be described, typically because it
	// was removed after the scan.
	Err error
}

// Describe queries entry for display. When preview is positive the first
// preview lines of a regular file are read as well; a preview failure is
// recorded in Err without discarding the metadata.
func Describe(entry *fileentry.Entry, preview int) Row {
	row := Row{Path: entry.Path(), Modified: "-", Size: "-", Mode: "-"}

	kind, err := entry.Type()
	if err != nil {
		row.Err = err
		return row
	}

	perm, err := entry.Permissions()
	if err != nil {
		row.Err = err
		return row
	}
	row.Mode = formatters.FormatMode(perm | typeBits(kind))

	modified, err := entry.ModTime()
	if err != nil {
		row.Err = err
		return row
	}
	row.Modified = formatters.FormatTime(modified)

	if kind == fileentry.TypeDirectory {
		return row
	}

	size, err := entry.Size()
	if kind == fileentry.TypeSymlink && stderrors.Is(err, errors.ErrIO) {
		// links to directories have no byte size
		return row
	}
	if err != nil {
		row.Err = err
		return row
	}
	row.Bytes = size
	row.Size = formatters.FormatBytes(size)

	if preview > 0 {
		lines, err := entry.Lines()
		if err != nil {
			row.Err = err
			return row
		}

		if len(lines) > preview {
			lines = lines[:preview]
		}
		row.Lines = lines
	}

	return row
}

// Options controls Write.
type Options struct {
	// Preview is the number of content lines shown under each file.
	Preview int
	// Elapsed is the scan duration shown in the summary; zero omits it.
	Elapsed time.Duration
}

// Write renders one line per entry (modification time, size, mode, path)
// followed by a summary line. It returns the number of entries that could
// not be described.
func Write(w io.Writer, coll *collection.Collection, opts Options) (int, error) {
	renderer := lipgloss.NewRenderer(w)
	styles := newStyles(renderer)

	rows := make([]Row, 0, coll.Len())
	sizeWidth := 0
	coll.ForEach(func(entry *fileentry.Entry) bool {
		row := Describe(entry, opts.Preview)
		rows = append(rows, row)
		sizeWidth = max(sizeWidth, lipgloss.Width(row.Size))

		return true
	})

	var builder strings.Builder
	var total int64
	failed := 0
	enricher := errors.NewEnricher()

	for _, row := range rows {
		total += row.Bytes

		fmt.Fprintf(&builder, "%s  %s  %s  %s\n",
			styles.dim.Render(fmt.Sprintf("%-19s", row.Modified)),
			styles.dim.Render(fmt.Sprintf("%*s", sizeWidth, row.Size)),
			styles.dim.Render(fmt.Sprintf("%-10s", row.Mode)),
			styles.path.Render(row.Path))

		for _, line := range row.Lines {
			fmt.Fprintf(&builder, "    %s\n", line)
		}

		if row.Err != nil {
			failed++
			enriched := enricher.Enrich(row.Err, row.Path)
			fmt.Fprintf(&builder, "    %s\n", styles.err.Render(enriched.Error()))
		}
	}

	builder.WriteString(styles.summary.Render(Summary(len(rows), total, opts.Elapsed)))
	builder.WriteString("\n")

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return failed, fmt.Errorf("failed to write report: %w", err)
	}

	return failed, nil
}

// Summary describes a result set, e.g. "3 matches, 1.2 KiB in 15ms".
func Summary(count int, total int64, elapsed time.Duration) string {
	noun := "matches"
	if count == 1 {
		noun = "match"
	}

	summary := fmt.Sprintf("%d %s, %s", count, noun, formatters.FormatBytes(total))
	if elapsed > 0 {
		summary += " in " + formatters.FormatDuration(elapsed)
	}

	return summary
}

func typeBits(kind fileentry.Type) fs.FileMode {
	switch kind {
	case fileentry.TypeDirectory:
		return fs.ModeDir
	case fileentry.TypeSymlink:
		return fs.ModeSymlink
	case fileentry.TypeRegular:
		return 0
	default:
		return fs.ModeIrregular
	}
}

type styles struct {
	dim     lipgloss.Style
	path    lipgloss.Style
	err     lipgloss.Style
	summary lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		dim:     r.NewStyle().Foreground(lipgloss.Color("240")),
		path:    r.NewStyle().Foreground(lipgloss.Color("86")),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")),
		summary: r.NewStyle().Bold(true),
	}
}
