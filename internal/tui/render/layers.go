package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/components"
	"github.com/thenoetrevino/dressdash/internal/tui/layers"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// RenderFormLayer renders the open create or edit dialog as a layer
func RenderFormLayer(m *tui.Model) *lipgloss.Layer {
	form := m.FormState.Form()
	if form == nil {
		return nil
	}

	var title string
	style := components.CreateInputBoxStyle
	switch m.UiState.Mode() {
	case state.StoreFormMode:
		title = "New Store"
		if s := m.FormState.EditingStore(); s != nil {
			title = "Edit Store · " + s.Name
			style = components.EditInputBoxStyle
		}
	case state.PackageFormMode:
		title = "New Package"
		if p := m.FormState.EditingPackage(); p != nil {
			title = "Edit Package · " + p.Name
			style = components.EditInputBoxStyle
		}
	case state.RateFormMode:
		title = "Exchange Rate"
		style = components.EditInputBoxStyle
	case state.CreditItemFormMode:
		title = "New Catalog Entry"
		if c := m.FormState.EditingCreditItem(); c != nil {
			title = "Edit Catalog Entry · " + c.JobName
			style = components.EditInputBoxStyle
		}
	case state.PromptFormMode:
		title = "New Prompt"
		if p := m.FormState.EditingPrompt(); p != nil {
			title = "Edit Prompt · " + p.Name
			style = components.EditInputBoxStyle
		}
	case state.NumberFormMode:
		title = "Add WhatsApp Number"
	case state.UserFormMode:
		title = "New User"
		if u := m.FormState.EditingUser(); u != nil {
			title = "Edit User · " + u.Email
			style = components.EditInputBoxStyle
		}
	case state.MessageFormMode:
		title = "Send Bot Message"
	case state.PaymentForFormMode:
		title = "New Payment Purpose"
		if m.FormState.EditingLookup() != "" {
			title = "Rename Payment Purpose"
			style = components.EditInputBoxStyle
		}
	case state.PaymentMethodFormMode:
		title = "New Payment Method"
		if m.FormState.EditingLookup() != "" {
			title = "Rename Payment Method"
			style = components.EditInputBoxStyle
		}
	case state.DownloadFormMode:
		title = "New Download"
	}

	formBox := style.
		Width(min(70, m.UiState.Width()*3/4)).
		MaxHeight(m.UiState.Height()).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			components.TitleStyle.Render(title),
			"",
			form.View(),
		))

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// RenderPauseConfirmLayer renders the store pause/resume confirmation
func RenderPauseConfirmLayer(m *tui.Model) *lipgloss.Layer {
	store := m.FormState.PauseTarget()
	if store == nil {
		return nil
	}

	question := fmt.Sprintf("Pause '%s'?\nThe bot stops taking jobs for this store.", store.Name)
	if store.IsPaused {
		question = fmt.Sprintf("Resume '%s'?", store.Name)
	}
	confirmBox := components.PauseConfirmBoxStyle.
		Width(50).
		Render(question + "\n\n[y]es  [n]o")

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// RenderDiscardConfirmLayer renders the discard confirmation dialog with context-aware message
func RenderDiscardConfirmLayer(m *tui.Model) *lipgloss.Layer {
	ctx := m.UiState.DiscardContext()
	if ctx == nil {
		return nil
	}

	confirmBox := components.PauseConfirmBoxStyle.
		Width(50).
		Render(fmt.Sprintf("%s\n\n[y]es  [n]o", ctx.Message))

	return layers.CreateCenteredLayer(confirmBox, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the help screen as a layer
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	width := min(72, m.UiState.Width()-4)
	helpBox := components.HelpBoxStyle.
		Width(width).
		MaxHeight(m.UiState.Height()).
		Render(components.RenderMarkdown(components.MarkdownProps{
			Markdown: HelpMarkdown(m),
			Width:    width - 4,
		}))

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// HelpMarkdown lists the key bindings from the current key mappings
func HelpMarkdown(m *tui.Model) string {
	km := m.Config.KeyMappings
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Tables", [][2]string{
			{km.PrevRow + " / " + km.NextRow, "Move between rows"},
			{km.PrevColumn + " / " + km.NextColumn, "Move between headers"},
			{km.ToggleSort, "Sort by the focused header"},
			{km.SortAsc + " / " + km.SortDesc, "Sort ascending / descending"},
			{km.PrevPage + " / " + km.NextPage, "Previous / next page"},
			{km.Search, "Search"},
			{km.Columns, "Show or hide columns"},
			{km.Export, "Export the filtered rows"},
		}},
		{"Pages", [][2]string{
			{km.NextTab + " / " + km.PrevTab, "Next / previous tab"},
			{km.Refresh, "Refresh"},
			{km.Create, "Add a row to the tab, send a bot message or start a download"},
			{km.Edit, "Edit the selected row, or the exchange rate on the dashboard"},
			{km.TogglePause, "Pause or resume the selected store"},
			{km.Filter, "Cycle the error log type"},
			{km.PrevColumn + " / " + km.NextColumn, "Change the dashboard range"},
		}},
		{"Other", [][2]string{
			{km.SaveForm, "Save the open dialog"},
			{km.Logout, "Sign out"},
			{km.ShowHelp, "Show this help"},
			{km.Quit, "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n|---|---|\n", s.title)
		for _, k := range s.keys {
			fmt.Fprintf(&b, "| `%s` | %s |\n", k[0], k[1])
		}
	}
	b.WriteString("\nPress any of `esc`, `enter` or `" + km.ShowHelp + "` to close.\n")
	return b.String()
}
