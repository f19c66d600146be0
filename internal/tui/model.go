// Package tui provides the interactive results browser: a spinner while the
// scan runs, then a file list with a metadata and content preview of the
// selected entry.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/filescan/internal/tui/shared"
	"github.com/joe/filescan/pkg/collection"
)

// Phase represents the current state of the browser
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseResults
	PhaseError
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseScanning:
		return "scanning"
	case PhaseResults:
		return "results"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// ScanFunc runs the scan the browser displays. It is called again on rescan.
type ScanFunc func() (*collection.Collection, error)

// Model is the browser state
type Model struct {
	root string
	scan ScanFunc

	phase    Phase
	spinner  spinner.Model
	preview  viewport.Model
	entries  *collection.Collection
	cursor   int
	offset   int
	elapsed  time.Duration
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser for the results of scan over root
func NewModel(root string, scan ScanFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.SpinnerStyle()

	return Model{
		root:    root,
		scan:    scan,
		phase:   PhaseScanning,
		spinner: s,
		preview: viewport.New(0, 0),
		entries: collection.New(),
	}
}

// Phase returns the current phase (for testing)
func (m Model) Phase() Phase {
	return m.phase
}

// Cursor returns the index of the selected entry (for testing)
func (m Model) Cursor() int {
	return m.cursor
}

// Entries returns the scan results shown by the browser
func (m Model) Entries() *collection.Collection {
	return m.entries
}

// Init starts the spinner and the scan
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startScan())
}

// startScan runs the scan off the update loop
func (m Model) startScan() tea.Cmd {
	scan := m.scan

	return func() tea.Msg {
		started := time.Now()

		entries, err := scan()
		if err != nil {
			return shared.ErrorMsg{Err: err}
		}

		return shared.ScanCompleteMsg{Entries: entries, Elapsed: time.Since(started)}
	}
}

// listHeight is the number of list rows that fit on screen
func (m Model) listHeight() int {
	return max(m.height-shared.ChromeHeight, shared.MinListHeight)
}
