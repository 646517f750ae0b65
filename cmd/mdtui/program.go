package main

import (
	"mdtui/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

// runProgram owns the terminal for the lifetime of the editor: alternate
// screen, mouse wheel reporting and focus events.
func runProgram(m *tui.Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
