package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders a tab bar with the given tab names
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [Right]
//	│ Tab1 │ │ Tab2 │──────────────────────
//	      active    inactive
//
// Tabs that do not fit are dropped from the side away from the selection.
func RenderTabs(tabs []string, selectedIdx int, width int, right string) string {
	start, end := visibleTabs(tabs, selectedIdx, width-lipgloss.Width(right)-2)

	var renderedTabs []string
	for i := start; i < end; i++ {
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tabs[i]))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tabs[i]))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	gapWidth := max(width-lipgloss.Width(row)-lipgloss.Width(right)-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if right != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

// visibleTabs picks the window of tabs around selected that fits in width
func visibleTabs(tabs []string, selected, width int) (int, int) {
	if len(tabs) == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), len(tabs)-1)
	tabWidth := func(i int) int {
		return lipgloss.Width(TabStyle.Render(tabs[i]))
	}

	start, end := selected, selected+1
	used := tabWidth(selected)
	for {
		grew := false
		if end < len(tabs) && used+tabWidth(end) <= width {
			used += tabWidth(end)
			end++
			grew = true
		}
		if start > 0 && used+tabWidth(start-1) <= width {
			start--
			used += tabWidth(start)
			grew = true
		}
		if !grew {
			return start, end
		}
	}
}
