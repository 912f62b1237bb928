package datatable

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
)

// Styles used by View.
type Styles struct {
	Border         lipgloss.Style
	Header         lipgloss.Style
	SelectedHeader lipgloss.Style
	Cell           lipgloss.Style
	SelectedRow    lipgloss.Style
	Empty          lipgloss.Style
	Footer         lipgloss.Style
	Disabled       lipgloss.Style
	Enabled        lipgloss.Style
	Search         lipgloss.Style
	Action         lipgloss.Style
	Menu           lipgloss.Style
	MenuSelected   lipgloss.Style
}

// DefaultStyles builds styles from the current theme colors.
func DefaultStyles() Styles {
	return Styles{
		Border:         lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)),
		Header:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.HeaderFg)).Padding(0, 1),
		SelectedHeader: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(theme.Accent)).Padding(0, 1),
		Cell:           lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Padding(0, 1),
		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SelectedFg)).
			Background(lipgloss.Color(theme.SelectedBg)).
			Padding(0, 1),
		Empty:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Subtle)).Align(lipgloss.Center),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Strikethrough(true),
		Enabled:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		Search:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)),
		Action:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		MenuSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
	}
}
