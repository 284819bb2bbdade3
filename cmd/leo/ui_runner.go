package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"leo/internal/driver"
	"leo/internal/ui"
)

// runProgressUI drives the Bubble Tea progress display until the event
// channel closes.
func runProgressUI(title string, files []string, events <-chan driver.Event) error {
	model := ui.NewProgressModel(title, files, events)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("progress ui failed: %w", err)
	}
	return nil
}
