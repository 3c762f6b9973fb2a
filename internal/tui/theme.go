// Package tui provides the Bubble Tea preview of a generated file.
package tui

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// IsAccessible returns true when the environment requests accessible (no-color) output.
// Respects the NO_COLOR standard (https://no-color.org) and ACCESSIBLE=1.
func IsAccessible() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("ACCESSIBLE") == "1"
}

// Theme holds the lipgloss styles used by the preview.
type Theme struct {
	Secondary color.Color
	Success   color.Color
	Muted     color.Color

	Title   lipgloss.Style
	HelpKey lipgloss.Style
}

// DefaultTheme returns the standard embedgen visual theme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#7C3AED")   // violet
	secondary := lipgloss.Color("#06B6D4") // cyan
	success := lipgloss.Color("#10B981")   // emerald
	muted := lipgloss.Color("#6B7280")     // gray

	return Theme{
		Secondary: secondary,
		Success:   success,
		Muted:     muted,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted),
	}
}

// SectionBanner renders a title with a rule above it.
func (t *Theme) SectionBanner(title string) string {
	rule := lipgloss.NewStyle().Foreground(t.Secondary).Render(strings.Repeat("─", 40))
	heading := t.Title.Render("▶ " + title)
	return fmt.Sprintf("\n%s\n  %s\n", rule, heading)
}
