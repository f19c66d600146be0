package tui

import (
	"fmt"
	"strings"

	"github.com/joe/filescan/internal/report"
	"github.com/joe/filescan/internal/tui/shared"
)

const helpText = "↑/↓ select • pgup/pgdn scroll preview • r rescan • q quit"

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(shared.RenderTitle("filescan " + m.root))
	b.WriteString("\n\n")

	switch m.phase {
	case PhaseScanning:
		fmt.Fprintf(&b, "%s Scanning %s...\n", m.spinner.View(), m.root)

	case PhaseError:
		b.WriteString(shared.RenderError(m.err, m.root, m.width))
		b.WriteString("\n")
		b.WriteString(shared.RenderDim("r rescan • q quit"))

	case PhaseResults:
		b.WriteString(m.renderResults())
	}

	return b.String()
}

// renderResults renders the list, the preview and the summary
func (m Model) renderResults() string {
	var b strings.Builder

	if m.entries.Len() == 0 {
		b.WriteString(shared.RenderDim("No matching files."))
		b.WriteString("\n\n")
	} else {
		width := m.width
		if width <= 0 {
			width = 80
		}
		listWidth := int(float64(width) * 0.6)

		preview := shared.RenderWidgetBox("Preview", m.preview.View(), width-listWidth)
		b.WriteString(shared.RenderTwoColumnLayout(m.renderList(listWidth), preview, width, m.listHeight()))
		b.WriteString("\n")
	}

	var total int64
	for _, entry := range m.entries.All() {
		if size, err := entry.Size(); err == nil {
			total += size
		}
	}

	b.WriteString(shared.RenderDim(report.Summary(m.entries.Len(), total, m.elapsed)))
	b.WriteString("\n")
	b.WriteString(shared.RenderDim(helpText))

	return b.String()
}

// renderList renders the visible window of entries
func (m Model) renderList(width int) string {
	var b strings.Builder

	end := min(m.offset+m.listHeight(), m.entries.Len())
	for i := m.offset; i < end; i++ {
		entry, err := m.entries.At(i)
		if err != nil {
			break
		}

		path := shared.TruncatePath(entry.Path(), width-len(shared.PromptArrow)-1)
		if i == m.cursor {
			b.WriteString(shared.FileItemSelectedStyle().Render(shared.PromptArrow + path))
		} else {
			b.WriteString(shared.FileItemStyle().Render("  " + path))
		}
		b.WriteString("\n")
	}

	return b.String()
}
