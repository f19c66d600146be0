package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the browser until the user quits
func Run(root string, scan ScanFunc, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(root, scan), opts...)

	if _, err := p.Run(); err != nil {
		return err //nolint:wrapcheck // Surfaced unchanged to main
	}

	return nil
}
