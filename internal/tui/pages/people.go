package pages

import (
	"context"
	"strings"

	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/compare"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
)

// PhonesPage is the numbers tab
type PhonesPage = ListPage[models.PhoneNumber]

// NewPhonesPage lists the WhatsApp numbers attached to stores
func NewPhonesPage(deps *Deps) *PhonesPage {
	return NewListPage(Resource[models.PhoneNumber]{
		Name:  "numbers",
		Title: "Numbers",
		Columns: []datatable.Column[models.PhoneNumber]{
			{Key: "phone", Label: "Phone", Sortable: true, Kind: compare.String},
			{Key: "assigned_store", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "wapp_owner_name", Label: "Owner", Sortable: true, Kind: compare.String},
			{Key: "total_jobs", Label: "Jobs", Sortable: true, Kind: compare.Number},
			{Key: "is_primary", Label: "Primary", Sortable: true, Kind: compare.Bool, Render: func(n models.PhoneNumber) string {
				return yesNo(n.IsPrimary)
			}},
			{Key: "last_seen", Label: "Last Seen", Sortable: true, Kind: compare.Date, Render: func(n models.PhoneNumber) string {
				return ago(n.LastSeen())
			}},
		},
		DefaultSort: &datatable.Sort{Key: "total_jobs", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.PhoneNumber, error) {
			page, err := deps.Client.Numbers(ctx, "", api.ListParams{})
			return page.Items, err
		},
	}, deps)
}

// UsersPage is the admin only users tab
type UsersPage = ListPage[models.User]

// NewUsersPage lists dashboard operators
func NewUsersPage(deps *Deps) *UsersPage {
	return NewListPage(Resource[models.User]{
		Name:  "users",
		Title: "Users",
		Columns: []datatable.Column[models.User]{
			{Key: "full_name", Label: "Name", Sortable: true, Kind: compare.String},
			{Key: "email", Label: "Email", Sortable: true, Kind: compare.String},
			{Key: "role", Label: "Role", Sortable: true, Kind: compare.String, Render: func(u models.User) string {
				return datatable.Format(strings.ToUpper(u.Role))
			}},
			{Key: "active", Label: "Active", Sortable: true, Kind: compare.Bool, Render: func(u models.User) string {
				return yesNo(u.IsActive)
			}},
			{Key: "created_at", Label: "Created", Sortable: true, Kind: compare.Date, Render: func(u models.User) string {
				return date(u.CreatedAt)
			}},
		},
		DefaultSort: &datatable.Sort{Key: "full_name", Direction: compare.Asc},
		Fetch: func(ctx context.Context) ([]models.User, error) {
			page, err := deps.Client.Users(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}

// BotMessagesPage is the bot messages tab; manual messages are sent from it
type BotMessagesPage = ListPage[models.BotMessage]

// NewBotMessagesPage lists the messages the bot sent to store owners
func NewBotMessagesPage(deps *Deps) *BotMessagesPage {
	return NewListPage(Resource[models.BotMessage]{
		Name:  "bot-messages",
		Title: "Bot Messages",
		Columns: []datatable.Column[models.BotMessage]{
			{Key: "created_at", Label: "Sent", Sortable: true, Kind: compare.Date, Render: func(m models.BotMessage) string {
				return date(m.CreatedAt)
			}},
			{Key: "store_name", Label: "Store", Sortable: true, Kind: compare.String, Width: 24},
			{Key: "phone_e164", Label: "Phone", Sortable: true, Kind: compare.String},
			{Key: "message_type", Label: "Type", Sortable: true, Kind: compare.String},
			{Key: "message_body", Label: "Message", Width: 56, Render: func(m models.BotMessage) string {
				return datatable.Format(strings.Join(strings.Fields(m.MessageBody), " "))
			}},
		},
		DefaultSort: &datatable.Sort{Key: "created_at", Direction: compare.Desc},
		Fetch: func(ctx context.Context) ([]models.BotMessage, error) {
			page, err := deps.Client.BotMessages(ctx, api.ListParams{})
			return page.Items, err
		},
	}, deps)
}
