package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
)

const (
	cardWidth = 28
	cardGap   = 1
)

// Card is one figure on the dashboard
type Card struct {
	Title string
	Value string
	Note  string
}

// RenderCard renders a card as title, value and an optional note
func RenderCard(c Card) string {
	inner := uint(cardWidth - 4)
	parts := []string{
		CardTitleStyle.Render(truncate.StringWithTail(c.Title, inner, "…")),
		CardValueStyle.Render(truncate.StringWithTail(c.Value, inner, "…")),
	}
	note := " "
	if c.Note != "" {
		note = truncate.StringWithTail(c.Note, inner, "…")
	}
	parts = append(parts, SubtleStyle.Render(note))
	return CardStyle.Render(strings.Join(parts, "\n"))
}

// RenderCardGrid flows cards into as many columns as fit in width
func RenderCardGrid(cards []Card, width int) string {
	if len(cards) == 0 {
		return ""
	}
	perRow := max((width+cardGap)/(cardWidth+cardGap), 1)

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		var row []string
		for j := i; j < min(i+perRow, len(cards)); j++ {
			if j > i {
				row = append(row, strings.Repeat(" ", cardGap))
			}
			row = append(row, RenderCard(cards[j]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
