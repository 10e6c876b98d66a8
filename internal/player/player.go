package player

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Start runs one demo session and blocks until the operator quits or
// the script ends. The program stays inline (no alt screen) so echoed
// lines and their output accumulate in the terminal scrollback like a
// typed session.
func Start(o Options) error {
	// Global zone manager for the clickable source overlay.
	zone.NewGlobal()
	p := tea.NewProgram(newModel(o), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
