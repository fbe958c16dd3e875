package tui

import "github.com/charmbracelet/lipgloss"

// Styles is the color theme of the shell. Two fixed palettes mirror the light and
// dark themes of the app.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Panel     lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Owner     lipgloss.Style
}

func newStyles(dark bool) Styles {
	var (
		accent  = lipgloss.Color("201") // magenta, from the app's gradient
		subtle  = lipgloss.Color("243")
		danger  = lipgloss.Color("196")
		border  = lipgloss.Color("63")
		regular = lipgloss.Color("235")
	)
	if dark {
		regular = lipgloss.Color("252")
	}

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Tab:       lipgloss.NewStyle().Foreground(subtle).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Bold(true).Foreground(regular).Underline(true).Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		Muted:  lipgloss.NewStyle().Foreground(subtle),
		Status: lipgloss.NewStyle().Foreground(regular),
		Error:  lipgloss.NewStyle().Foreground(danger),
		Owner:  lipgloss.NewStyle().Foreground(accent),
	}
}
