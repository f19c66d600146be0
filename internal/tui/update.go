package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/filescan/internal/report"
	"github.com/joe/filescan/internal/tui/shared"
	"github.com/joe/filescan/pkg/collection"
	"github.com/joe/filescan/pkg/fileentry"
	"github.com/joe/filescan/pkg/formatters"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePreview()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case shared.ScanCompleteMsg:
		m.phase = PhaseResults
		m.entries = msg.Entries
		if m.entries == nil {
			m.entries = collection.New()
		}
		m.elapsed = msg.Elapsed
		m.cursor = 0
		m.offset = 0
		m.loadPreview()
		return m, nil

	case shared.ErrorMsg:
		m.phase = PhaseError
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.phase != PhaseScanning {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case shared.KeyCtrlC, "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		if m.phase == PhaseScanning {
			return m, nil
		}
		m.phase = PhaseScanning
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.startScan())
	}

	if m.phase != PhaseResults {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.moveCursor(-m.entries.Len())
	case "end", "G":
		m.moveCursor(m.entries.Len())
	default:
		// pgup, pgdown and friends scroll the preview
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	return m, nil
}

// moveCursor moves the selection by delta, clamped to the list, and keeps
// it inside the visible window
func (m *Model) moveCursor(delta int) {
	if m.entries.Len() == 0 {
		return
	}

	cursor := min(max(m.cursor+delta, 0), m.entries.Len()-1)
	if cursor == m.cursor {
		return
	}
	m.cursor = cursor

	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}

	m.loadPreview()
}

// resizePreview fits the preview viewport into the right column
func (m *Model) resizePreview() {
	const boxOverhead = 6 // Borders, padding and widget margin

	m.preview.Width = max(m.width-int(float64(m.width)*0.6)-boxOverhead, 1)
	m.preview.Height = max(m.listHeight()-2, 1)
}

// loadPreview describes the selected entry into the preview viewport
func (m *Model) loadPreview() {
	entry, err := m.entries.At(m.cursor)
	if err != nil {
		m.preview.SetContent("")
		return
	}

	m.preview.SetContent(describeEntry(entry))
	m.preview.GotoTop()
}

// describeEntry renders the metadata of entry followed by its first lines
func describeEntry(entry *fileentry.Entry) string {
	row := report.Describe(entry, shared.PreviewLines)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Modified:"), row.Modified)
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Age:     "), relativeTime(entry.ModTime))
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Accessed:"), optionalTime(entry.AccessTime))
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Created: "), optionalTime(entry.CreationTime))
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Size:    "), row.Size)
	fmt.Fprintf(&b, "%s %s\n", shared.RenderLabel("Mode:    "), row.Mode)

	if row.Err != nil {
		b.WriteString("\n")
		b.WriteString(shared.RenderError(row.Err, row.Path, 0))
		return b.String()
	}

	if len(row.Lines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(row.Lines, "\n"))
	}

	return b.String()
}

// relativeTime formats a timestamp query relative to now
func relativeTime(query func() (time.Time, error)) string {
	t, err := query()
	if err != nil {
		return "-"
	}

	return formatters.FormatRelativeTime(t)
}

// optionalTime formats a timestamp query that may be unsupported
func optionalTime(query func() (time.Time, error)) string {
	t, err := query()
	if err != nil {
		return shared.RenderDim("unavailable")
	}

	return formatters.FormatTime(t)
}
