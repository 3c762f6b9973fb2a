package tui

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
)

// Preview pages through the generated file at path until the user quits.
// In accessible/no-color mode nothing is shown.
func Preview(path, summary string) error {
	if IsAccessible() {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s for preview: %w", path, err)
	}

	theme := DefaultTheme()
	viewer := NewViewer(path, summary, string(data), &theme)
	if _, err := tea.NewProgram(viewer).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
