package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// Stores lists every store with its dashboard aggregates
func (c *Client) Stores(ctx context.Context, p ListParams) (Page[models.Store], error) {
	return listAll[models.Store](ctx, c, "/stores", "query", p)
}

// CreateStore registers a store
func (c *Client) CreateStore(ctx context.Context, in models.StoreInput) (models.Store, error) {
	if err := in.Validate(); err != nil {
		return models.Store{}, &Error{Kind: KindInvalid, Message: err.Error(), Err: err}
	}
	env, err := c.do(ctx, http.MethodPost, "/stores", nil, in)
	if err != nil {
		return models.Store{}, err
	}
	return one[models.Store](env)
}

// UpdateStore patches the fields set in patch
func (c *Client) UpdateStore(ctx context.Context, id string, patch models.StorePatch) (models.Store, error) {
	env, err := c.do(ctx, http.MethodPatch, "/stores/"+url.PathEscape(id), nil, patch)
	if err != nil {
		return models.Store{}, err
	}
	return one[models.Store](env)
}

// SetStorePaused pauses or resumes image processing for a store
func (c *Client) SetStorePaused(ctx context.Context, id string, paused bool) (models.Store, error) {
	return c.UpdateStore(ctx, id, models.StorePatch{IsPaused: &paused})
}

// DeleteStore removes a store
func (c *Client) DeleteStore(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/stores/"+url.PathEscape(id), nil, nil)
	return err
}

// ImageJobs lists image jobs
func (c *Client) ImageJobs(ctx context.Context, p ListParams) (Page[models.ImageJob], error) {
	return listAll[models.ImageJob](ctx, c, "/image-jobs", "q", p)
}

// VideoJobs lists video jobs
func (c *Client) VideoJobs(ctx context.Context, p ListParams) (Page[models.VideoJob], error) {
	return listAll[models.VideoJob](ctx, c, "/video-jobs", "q", p)
}

// Transactions lists top ups
func (c *Client) Transactions(ctx context.Context, p ListParams) (Page[models.Transaction], error) {
	return listAll[models.Transaction](ctx, c, "/transactions", "q", p)
}

// Refunds lists refunds
func (c *Client) Refunds(ctx context.Context, p ListParams) (Page[models.Refund], error) {
	return listAll[models.Refund](ctx, c, "/refunds", "q", p)
}

// CreditCatalog lists credit prices per job kind
func (c *Client) CreditCatalog(ctx context.Context, p ListParams) (Page[models.CreditItem], error) {
	return list[models.CreditItem](ctx, c, "/credit-catalog", "", p)
}

// CreateCreditItem adds a catalog entry
func (c *Client) CreateCreditItem(ctx context.Context, in models.CreditItemInput) (models.CreditItem, error) {
	return write[models.CreditItem](ctx, c, http.MethodPost, "/credit-catalog", in)
}

// UpdateCreditItem replaces a catalog entry's fields
func (c *Client) UpdateCreditItem(ctx context.Context, id string, in models.CreditItemInput) (models.CreditItem, error) {
	return write[models.CreditItem](ctx, c, http.MethodPatch, "/credit-catalog/"+url.PathEscape(id), in)
}

// Prompts lists prompts
func (c *Client) Prompts(ctx context.Context, p ListParams) (Page[models.Prompt], error) {
	return list[models.Prompt](ctx, c, "/prompts", "q", p)
}

// CreatePrompt adds a prompt, global unless in.Scope says otherwise
func (c *Client) CreatePrompt(ctx context.Context, in models.PromptInput) (models.Prompt, error) {
	if in.Scope == "" {
		in.Scope = models.ScopeGlobal
	}
	return write[models.Prompt](ctx, c, http.MethodPost, "/prompts", in)
}

// UpdatePrompt replaces a prompt's name and text
func (c *Client) UpdatePrompt(ctx context.Context, id string, in models.PromptInput) (models.Prompt, error) {
	if in.Scope == "" {
		in.Scope = models.ScopeGlobal
	}
	return write[models.Prompt](ctx, c, http.MethodPatch, "/prompts/"+url.PathEscape(id), in)
}

// Packages lists packages
func (c *Client) Packages(ctx context.Context, p ListParams) (Page[models.Package], error) {
	return list[models.Package](ctx, c, "/packages", "q", p)
}

// CreatePackage adds a package
func (c *Client) CreatePackage(ctx context.Context, in models.PackageInput) (models.Package, error) {
	if err := in.Validate(); err != nil {
		return models.Package{}, &Error{Kind: KindInvalid, Message: err.Error(), Err: err}
	}
	env, err := c.do(ctx, http.MethodPost, "/packages", nil, in)
	if err != nil {
		return models.Package{}, err
	}
	return one[models.Package](env)
}

// UpdatePackage replaces a package's editable fields
func (c *Client) UpdatePackage(ctx context.Context, id string, in models.PackageInput) (models.Package, error) {
	if err := in.Validate(); err != nil {
		return models.Package{}, &Error{Kind: KindInvalid, Message: err.Error(), Err: err}
	}
	env, err := c.do(ctx, http.MethodPatch, "/packages/"+url.PathEscape(id), nil, in)
	if err != nil {
		return models.Package{}, err
	}
	return one[models.Package](env)
}

// Numbers lists WhatsApp numbers, across all stores when storeID is empty
func (c *Client) Numbers(ctx context.Context, storeID string, p ListParams) (Page[models.PhoneNumber], error) {
	path := "/numbers"
	if storeID != "" {
		path = "/stores/" + url.PathEscape(storeID) + "/numbers"
	}
	return listAll[models.PhoneNumber](ctx, c, path, "q", p)
}

// CreateNumber attaches a WhatsApp number to in.StoreID
func (c *Client) CreateNumber(ctx context.Context, in models.PhoneNumberInput) (models.PhoneNumber, error) {
	path := "/stores/" + url.PathEscape(in.StoreID) + "/numbers"
	return write[models.PhoneNumber](ctx, c, http.MethodPost, path, in)
}

// Users lists dashboard operators
func (c *Client) Users(ctx context.Context, p ListParams) (Page[models.User], error) {
	return list[models.User](ctx, c, "/users", "", p)
}

// CreateUser adds an operator
func (c *Client) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	return write[models.User](ctx, c, http.MethodPost, "/users", in)
}

// UpdateUser patches the fields set in patch
func (c *Client) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	return write[models.User](ctx, c, http.MethodPatch, "/users/"+url.PathEscape(id), patch)
}

// BotMessages lists messages the bot sent
func (c *Client) BotMessages(ctx context.Context, p ListParams) (Page[models.BotMessage], error) {
	return listAll[models.BotMessage](ctx, c, "/bot-messages", "q", p)
}

// SendManualMessage sends a one-off WhatsApp message to a store's owner
func (c *Client) SendManualMessage(ctx context.Context, in models.ManualMessageInput) error {
	in.StoreID = strings.TrimSpace(in.StoreID)
	in.Message = strings.TrimSpace(in.Message)
	_, err := write[json.RawMessage](ctx, c, http.MethodPost, "/bot-messages/manual", in)
	return err
}

// RunDailySummary asks the backend to send today's summaries now
func (c *Client) RunDailySummary(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/bot-messages/run-daily-summary", nil, nil)
	return err
}

// Range is a KPI preset range
type Range string

const (
	RangeToday     Range = "today"
	RangeYesterday Range = "yesterday"
	RangeThisWeek  Range = "this-week"
	RangeLastWeek  Range = "last-week"
	RangeThisMonth Range = "this-month"
	RangeLastMonth Range = "last-month"
	RangeCustom    Range = "custom"
)

// Ranges lists the presets in display order
var Ranges = []Range{RangeToday, RangeYesterday, RangeThisWeek, RangeLastWeek, RangeThisMonth, RangeLastMonth, RangeCustom}

// Backend returns the value the kpi endpoint expects, e.g. THIS_WEEK
func (r Range) Backend() string {
	return strings.ToUpper(strings.ReplaceAll(string(r), "-", "_"))
}

// Label is the human name of the range
func (r Range) Label() string {
	words := strings.Split(string(r), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// ParseRange validates a preset name
func ParseRange(s string) (Range, error) {
	for _, r := range Ranges {
		if string(r) == strings.ToLower(strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// KPI fetches the dashboard summary. from and to (YYYY-MM-DD) only apply
// to RangeCustom.
func (c *Client) KPI(ctx context.Context, r Range, from, to string) (models.KPI, error) {
	q := url.Values{}
	if r != "" {
		q.Set("range", r.Backend())
	}
	if r == RangeCustom {
		if from != "" {
			q.Set("from", from)
		}
		if to != "" {
			q.Set("to", to)
		}
	}
	env, err := c.do(ctx, http.MethodGet, "/kpi", q, nil)
	if err != nil {
		return models.KPI{}, err
	}
	return one[models.KPI](env)
}

// CommonThings returns the global settings
func (c *Client) CommonThings(ctx context.Context) (models.CommonThings, error) {
	env, err := c.do(ctx, http.MethodGet, "/common-things", nil, nil)
	if err != nil {
		return models.CommonThings{}, err
	}
	return one[models.CommonThings](env)
}

// SetExchangeRate updates the USD to EGP rate used for new jobs
func (c *Client) SetExchangeRate(ctx context.Context, rate float64) (models.CommonThings, error) {
	if rate <= 0 {
		return models.CommonThings{}, &Error{Kind: KindInvalid, Message: "Exchange rate must be greater than zero"}
	}
	env, err := c.do(ctx, http.MethodPatch, "/common-things/exchange-rate", nil, map[string]float64{
		"exchange_usd_egp": rate,
	})
	if err != nil {
		return models.CommonThings{}, err
	}
	return one[models.CommonThings](env)
}
