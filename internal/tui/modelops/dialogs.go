package modelops

import (
	"fmt"
	"path"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/dressdash/internal/export"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui"
)

// SaveCreditItem creates a catalog entry, or updates it when id is set
func SaveCreditItem(m *tui.Model, id string, in models.CreditItemInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		var err error
		what := "create catalog entry"
		if id == "" {
			_, err = client.CreateCreditItem(ctx, in)
		} else {
			what = "update catalog entry"
			_, err = client.UpdateCreditItem(ctx, id, in)
		}
		if err != nil {
			logger.Error("failed to "+what, "credit_id", id, "error", err)
			return tui.MutationDoneMsg{What: what, Err: err}
		}
		logger.Info("catalog entry saved", "credit_id", id, "job_name", in.JobName)
		// job prices feed the image and video job costs
		return tui.MutationDoneMsg{
			What:    fmt.Sprintf("Catalog entry %q saved", in.JobName),
			Refresh: []string{"credit-catalog", "image-jobs", "video-jobs"},
		}
	}
}

// SavePrompt creates a global prompt, or updates it when id is set
func SavePrompt(m *tui.Model, id string, in models.PromptInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		var err error
		what := "create prompt"
		if id == "" {
			_, err = client.CreatePrompt(ctx, in)
		} else {
			what = "update prompt"
			_, err = client.UpdatePrompt(ctx, id, in)
		}
		if err != nil {
			logger.Error("failed to "+what, "prompt_id", id, "error", err)
			return tui.MutationDoneMsg{What: what, Err: err}
		}
		logger.Info("prompt saved", "prompt_id", id, "name", in.Name)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Prompt %q saved", in.Name), Refresh: []string{"prompts", "stores"}}
	}
}

// CreateNumber attaches a WhatsApp number to a store
func CreateNumber(m *tui.Model, in models.PhoneNumberInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		if _, err := client.CreateNumber(ctx, in); err != nil {
			logger.Error("failed to add number", "store_id", in.StoreID, "error", err)
			return tui.MutationDoneMsg{What: "add number", Err: err}
		}
		logger.Info("number added", "store_id", in.StoreID, "phone", in.PhoneE164)
		return tui.MutationDoneMsg{What: "Number " + in.PhoneE164 + " added", Refresh: []string{"numbers", "stores"}}
	}
}

// CreateUser adds an operator
func CreateUser(m *tui.Model, in models.UserInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		if _, err := client.CreateUser(ctx, in); err != nil {
			logger.Error("failed to create user", "email", in.Email, "error", err)
			return tui.MutationDoneMsg{What: "create user", Err: err}
		}
		logger.Info("user created", "email", in.Email, "role", in.Role)
		return tui.MutationDoneMsg{What: fmt.Sprintf("User %q created", in.FullName), Refresh: []string{"users"}}
	}
}

// UpdateUser patches an operator
func UpdateUser(m *tui.Model, user models.User, patch models.UserPatch) tea.Cmd {
	if patch == (models.UserPatch{}) {
		return func() tea.Msg {
			return tui.MutationDoneMsg{What: "update user", Err: ErrNoChanges}
		}
	}
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		if _, err := client.UpdateUser(ctx, user.ID, patch); err != nil {
			logger.Error("failed to update user", "user_id", user.ID, "error", err)
			return tui.MutationDoneMsg{What: "update user", Err: err}
		}
		// never log the password
		logger.Info("user updated", "user_id", user.ID, "password_changed", patch.Password != nil)
		name := user.FullName
		if patch.FullName != nil {
			name = *patch.FullName
		}
		return tui.MutationDoneMsg{What: fmt.Sprintf("User %q saved", name), Refresh: []string{"users", "downloads"}}
	}
}

// SendManualMessage sends a WhatsApp message to a store's owner
func SendManualMessage(m *tui.Model, in models.ManualMessageInput, storeName string) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	return func() tea.Msg {
		if err := client.SendManualMessage(ctx, in); err != nil {
			logger.Error("failed to send message", "store_id", in.StoreID, "error", err)
			return tui.MutationDoneMsg{What: "send message", Err: err}
		}
		logger.Info("manual message sent", "store_id", in.StoreID)
		return tui.MutationDoneMsg{What: "Message sent to " + storeName, Refresh: []string{"bot-messages"}}
	}
}

// SavePaymentFor adds a payment purpose, or renames it when id is set
func SavePaymentFor(m *tui.Model, id, name string) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	in := models.PaymentForInput{Name: name}
	return func() tea.Msg {
		var err error
		what := "add payment purpose"
		if id == "" {
			_, err = client.CreatePaymentFor(ctx, in)
		} else {
			what = "rename payment purpose"
			_, err = client.UpdatePaymentFor(ctx, id, in)
		}
		if err != nil {
			logger.Error("failed to "+what, "payment_for_id", id, "error", err)
			return tui.MutationDoneMsg{What: what, Err: err}
		}
		logger.Info("payment purpose saved", "payment_for_id", id, "name", name)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Payment purpose %q saved", name), Refresh: []string{"payment-for", "transactions"}}
	}
}

// SavePaymentMethod adds a payment method, or renames it when id is set
func SavePaymentMethod(m *tui.Model, id, name string) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	in := models.PaymentMethodInput{Name: name}
	return func() tea.Msg {
		var err error
		what := "add payment method"
		if id == "" {
			_, err = client.CreatePaymentMethod(ctx, in)
		} else {
			what = "rename payment method"
			_, err = client.UpdatePaymentMethod(ctx, id, in)
		}
		if err != nil {
			logger.Error("failed to "+what, "payment_method_id", id, "error", err)
			return tui.MutationDoneMsg{What: what, Err: err}
		}
		logger.Info("payment method saved", "payment_method_id", id, "name", name)
		return tui.MutationDoneMsg{What: fmt.Sprintf("Payment method %q saved", name), Refresh: []string{"payment-methods", "transactions"}}
	}
}

// CreateDownload asks the backend to bundle a store's images. The file
// links are written to the export directory as a table, since a terminal
// cannot start browser downloads.
func CreateDownload(m *tui.Model, in models.DownloadInput) tea.Cmd {
	ctx, client, logger := m.Ctx, m.Client, m.Logger
	exp, format := m.Deps.Exporter, exportFormat(m)
	return func() tea.Msg {
		res, err := client.CreateDownload(ctx, in)
		if err != nil {
			logger.Error("failed to prepare download", "store_id", in.StoreID, "error", err)
			return tui.MutationDoneMsg{What: "prepare download", Err: err}
		}

		links := res.Links()
		logger.Info("download prepared", "download_id", res.ID, "store_id", in.StoreID, "files", len(links))
		refresh := []string{"downloads"}
		switch {
		case len(links) == 0:
			return tui.MutationDoneMsg{What: "No images matched the download", Refresh: refresh}
		case exp == nil:
			return tui.MutationDoneMsg{What: fmt.Sprintf("%d files ready, first: %s", len(links), links[0]), Refresh: refresh}
		}

		out, err := exp.Export(ctx, "download-"+in.StoreNameCache, format, downloadTable(in, res))
		if err != nil {
			logger.Error("failed to save download links", "download_id", res.ID, "error", err)
			return tui.MutationDoneMsg{What: fmt.Sprintf("%d files ready, first: %s", len(links), links[0]), Refresh: refresh}
		}
		return tui.MutationDoneMsg{What: fmt.Sprintf("%d files ready, links saved to %s", len(links), out), Refresh: refresh}
	}
}

// downloadTable lists the files of a download with their links
func downloadTable(in models.DownloadInput, res models.DownloadResult) export.Table {
	t := export.Table{Title: "Download " + in.StoreNameCache, Columns: []string{"File", "URL"}}
	named := map[string]bool{}
	for _, f := range res.Files {
		if f.URL == "" || named[f.URL] {
			continue
		}
		name := f.Filename
		if name == "" {
			name = path.Base(f.URL)
		}
		named[f.URL] = true
		t.Rows = append(t.Rows, []string{name, f.URL})
	}
	for _, u := range res.URLs {
		if u != "" && !named[u] {
			t.Rows = append(t.Rows, []string{path.Base(u), u})
		}
	}
	return t
}

func exportFormat(m *tui.Model) export.Format {
	f, err := export.ParseFormat(m.Config.Export.Format)
	if err != nil {
		return export.CSV
	}
	return f
}
