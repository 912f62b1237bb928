package handlers

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/dressdash/internal/tui"
	"github.com/thenoetrevino/dressdash/internal/tui/huhforms"
	"github.com/thenoetrevino/dressdash/internal/tui/modelops"
	"github.com/thenoetrevino/dressdash/internal/tui/notifications"
	"github.com/thenoetrevino/dressdash/internal/tui/state"
)

// discardMessages are shown when leaving a dialog with unsaved edits
var discardMessages = map[state.Mode]string{
	state.StoreFormMode:         "Discard store changes?",
	state.PackageFormMode:       "Discard package changes?",
	state.RateFormMode:          "Discard exchange rate change?",
	state.CreditItemFormMode:    "Discard catalog changes?",
	state.PromptFormMode:        "Discard prompt changes?",
	state.NumberFormMode:        "Discard new number?",
	state.UserFormMode:          "Discard user changes?",
	state.MessageFormMode:       "Discard message?",
	state.PaymentForFormMode:    "Discard payment purpose changes?",
	state.PaymentMethodFormMode: "Discard payment method changes?",
	state.DownloadFormMode:      "Discard download?",
}

// HandleFormMode handles keys while a create or edit dialog is open.
func HandleFormMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	form := m.FormState.Form()
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	switch msg.String() {
	case "esc":
		if m.FormState.HasChanges() {
			m.UiState.SetDiscardContext(&state.DiscardContext{
				SourceMode: m.UiState.Mode(),
				Message:    discardMessages[m.UiState.Mode()],
			})
			m.UiState.SetMode(state.DiscardConfirmMode)
			return nil
		}
		closeForm(m)
		return nil

	case m.Config.KeyMappings.SaveForm:
		// quick save skips the remaining fields
		form.State = huh.StateCompleted
		return submitForm(m)
	}

	return updateForm(m, msg)
}

// updateForm feeds msg to the open form and submits it once complete.
func updateForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	form := m.FormState.Form()
	if form == nil {
		return nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.SetForm(f)
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		return tea.Batch(cmd, submitForm(m))
	case huh.StateAborted:
		if m.UiState.Mode() != state.LoginMode {
			closeForm(m)
		}
		return cmd
	}
	return cmd
}

// submitForm turns the completed form into an API call.
func submitForm(m *tui.Model) tea.Cmd {
	switch m.UiState.Mode() {
	case state.LoginMode:
		return submitLogin(m)
	case state.StoreFormMode:
		return submitStore(m)
	case state.PackageFormMode:
		return submitPackage(m)
	case state.RateFormMode:
		return submitRate(m)
	case state.CreditItemFormMode:
		return submitCreditItem(m)
	case state.PromptFormMode:
		return submitPrompt(m)
	case state.NumberFormMode:
		return submitNumber(m)
	case state.UserFormMode:
		return submitUser(m)
	case state.MessageFormMode:
		return submitMessage(m)
	case state.PaymentForFormMode, state.PaymentMethodFormMode:
		return submitLookup(m)
	case state.DownloadFormMode:
		return submitDownload(m)
	}
	return nil
}

func submitStore(m *tui.Model) tea.Cmd {
	fields, editing := m.FormState.Store, m.FormState.EditingStore()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	if editing != nil {
		patch, err := fields.Patch(*editing)
		if err != nil {
			return m.Notifications.Add(notifications.Error, "Invalid store: "+err.Error())
		}
		return modelops.UpdateStore(m, editing.ID, patch)
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid store: "+err.Error())
	}
	return modelops.CreateStore(m, in)
}

func submitPackage(m *tui.Model) tea.Cmd {
	fields, editing := m.FormState.Package, m.FormState.EditingPackage()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid package: "+err.Error())
	}
	id := ""
	if editing != nil {
		id = editing.ID
	}
	return modelops.SavePackage(m, id, in)
}

func submitRate(m *tui.Model) tea.Cmd {
	fields := m.FormState.Rate
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	rate, err := fields.Value()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid rate: "+err.Error())
	}
	return modelops.SetExchangeRate(m, rate)
}

func submitCreditItem(m *tui.Model) tea.Cmd {
	fields, editing := m.FormState.CreditItem, m.FormState.EditingCreditItem()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid catalog entry: "+err.Error())
	}
	id := ""
	if editing != nil {
		id = editing.ID
	}
	return modelops.SaveCreditItem(m, id, in)
}

func submitPrompt(m *tui.Model) tea.Cmd {
	fields, editing := m.FormState.Prompt, m.FormState.EditingPrompt()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid prompt: "+err.Error())
	}
	id := ""
	if editing != nil {
		id = editing.ID
		if editing.Scope != "" {
			in.Scope = editing.Scope
		}
	}
	return modelops.SavePrompt(m, id, in)
}

func submitNumber(m *tui.Model) tea.Cmd {
	fields := m.FormState.Number
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid number: "+err.Error())
	}
	return modelops.CreateNumber(m, in)
}

func submitUser(m *tui.Model) tea.Cmd {
	fields, editing := m.FormState.User, m.FormState.EditingUser()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	if editing != nil {
		patch, err := fields.Patch(*editing)
		if err != nil {
			return m.Notifications.Add(notifications.Error, "Invalid user: "+err.Error())
		}
		return modelops.UpdateUser(m, *editing, patch)
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid user: "+err.Error())
	}
	return modelops.CreateUser(m, in)
}

func submitMessage(m *tui.Model) tea.Cmd {
	fields := m.FormState.Message
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid message: "+err.Error())
	}
	name := huhforms.StoreName(modelops.KnownStores(m), in.StoreID)
	return modelops.SendManualMessage(m, in, name)
}

// submitLookup saves a payment purpose or method, told apart by the mode
func submitLookup(m *tui.Model) tea.Cmd {
	mode := m.UiState.Mode()
	fields, id := m.FormState.Lookup, m.FormState.EditingLookup()
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	name, err := fields.Value()
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid name: "+err.Error())
	}
	if mode == state.PaymentForFormMode {
		return modelops.SavePaymentFor(m, id, name)
	}
	return modelops.SavePaymentMethod(m, id, name)
}

func submitDownload(m *tui.Model) tea.Cmd {
	fields := m.FormState.Download
	closeForm(m)
	if !fields.Confirm {
		return nil
	}

	in, err := fields.Input(huhforms.StoreName(modelops.KnownStores(m), fields.StoreID))
	if err != nil {
		return m.Notifications.Add(notifications.Error, "Invalid download: "+err.Error())
	}
	return modelops.CreateDownload(m, in)
}

// closeForm drops the open dialog and returns to the pages.
func closeForm(m *tui.Model) {
	m.FormState.Clear()
	m.UiState.ClearDiscardContext()
	m.UiState.SetMode(state.NormalMode)
}
