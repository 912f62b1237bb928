package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 64

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Role:", "Stores:"
	ValueStyle    lipgloss.Style // For field values

	// Money styles
	PositiveStyle lipgloss.Style
	NegativeStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	PositiveStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Positive))

	NegativeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Negative))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// Field is one "Label: value" line of a card
type Field struct {
	Label string
	Value string
}

// RenderFields aligns labels into a column
func RenderFields(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	lines := make([]string, len(fields))
	for i, f := range fields {
		label := fmt.Sprintf("%-*s", width+1, f.Label+":")
		lines[i] = LabelStyle.Render(label) + " " + ValueStyle.Render(f.Value)
	}
	return strings.Join(lines, "\n")
}

// Signed colors an amount by its sign
func Signed(text string, amount float64) string {
	if amount < 0 {
		return NegativeStyle.Render(text)
	}
	return PositiveStyle.Render(text)
}

// RenderCard wraps a title and body in a styled card border
func RenderCard(title, body string) string {
	return CardStyle.Render(TitleStyle.Render(title) + "\n\n" + body)
}
