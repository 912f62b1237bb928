package pages

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dressdash/internal/api"
	"github.com/thenoetrevino/dressdash/internal/models"
	"github.com/thenoetrevino/dressdash/internal/tui/components"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
	"golang.org/x/sync/errgroup"
)

type kpiLoadedMsg struct {
	seq    int
	kpi    models.KPI
	common models.CommonThings
	err    error
}

// Dashboard shows the KPI cards for a preset range
type Dashboard struct {
	deps   *Deps
	ranges []api.Range
	idx    int

	kpi    *models.KPI
	common models.CommonThings

	prev    key.Binding
	next    key.Binding
	refresh key.Binding
	spinner spinner.Model
	loading bool
	seq     int
	err     error
	width   int
}

// NewDashboard starts on today's figures
func NewDashboard(deps *Deps) *Dashboard {
	km := deps.keys()
	d := &Dashboard{
		deps: deps,
		// custom ranges need dates, which the CLI takes instead
		ranges:  []api.Range{api.RangeToday, api.RangeYesterday, api.RangeThisWeek, api.RangeLastWeek, api.RangeThisMonth, api.RangeLastMonth},
		prev:    key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn, "prev range")),
		next:    key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn, "next range")),
		refresh: key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "refresh")),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	d.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return d
}

func (d *Dashboard) Name() string  { return "dashboard" }
func (d *Dashboard) Title() string { return "Dashboard" }
func (d *Dashboard) Focused() bool { return false }

func (d *Dashboard) Init() tea.Cmd {
	return d.Refresh()
}

// Range is the preset currently shown
func (d *Dashboard) Range() api.Range {
	return d.ranges[d.idx]
}

// KPI returns the last loaded figures
func (d *Dashboard) KPI() (models.KPI, bool) {
	if d.kpi == nil {
		return models.KPI{}, false
	}
	return *d.kpi, true
}

// ExchangeRate is the current USD to EGP setting
func (d *Dashboard) ExchangeRate() float64 {
	return d.common.ExchangeUSDEGP
}

// Refresh loads the KPIs for the current range and the global settings
func (d *Dashboard) Refresh() tea.Cmd {
	d.seq++
	d.loading = true
	seq, rng, client, ctx, logger := d.seq, d.Range(), d.deps.Client, d.deps.ctx(), d.deps.logger()

	load := func() tea.Msg {
		msg := kpiLoadedMsg{seq: seq}
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.kpi, err = client.KPI(gctx, rng, "", "")
			return err
		})
		g.Go(func() error {
			var err error
			if msg.common, err = client.CommonThings(gctx); err != nil {
				logger.Warn("failed to load settings", "error", err)
			}
			return nil
		})
		msg.err = g.Wait()
		return msg
	}
	return tea.Batch(load, d.spinner.Tick)
}

func (d *Dashboard) SetSize(width, _ int) {
	d.width = width
}

func (d *Dashboard) Update(msg tea.Msg) (Page, tea.Cmd) {
	switch msg := msg.(type) {
	case kpiLoadedMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.loading = false
		if msg.err != nil {
			d.err = msg.err
			return d, failed("Failed to load KPIs", msg.err)
		}
		d.err = nil
		d.kpi = &msg.kpi
		if msg.common.ExchangeUSDEGP > 0 {
			d.common = msg.common
		}
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, d.prev):
			d.idx = (d.idx - 1 + len(d.ranges)) % len(d.ranges)
			return d, d.Refresh()
		case key.Matches(msg, d.next):
			d.idx = (d.idx + 1) % len(d.ranges)
			return d, d.Refresh()
		case key.Matches(msg, d.refresh):
			return d, d.Refresh()
		}
	}
	return d, nil
}

func pct(v *float64) string {
	if v == nil {
		return datatable.Placeholder
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func count(v *int) string {
	if v == nil {
		return datatable.Placeholder
	}
	return fmt.Sprint(*v)
}

// Cards returns the KPI cards in display order
func (d *Dashboard) Cards() []components.Card {
	if d.kpi == nil {
		return nil
	}
	k := *d.kpi

	avgTopUp := datatable.Placeholder
	if k.AvgTopUpEGP != nil {
		avgTopUp = egp(*k.AvgTopUpEGP)
	}
	rate := datatable.Placeholder
	rateNote := ""
	if d.common.ExchangeUSDEGP > 0 {
		rate = money(d.common.ExchangeUSDEGP)
		rateNote = "updated " + ago(d.common.UpdatedAt)
		if d.common.UpdatedByName != "" {
			rateNote += " by " + d.common.UpdatedByName
		}
	}

	return []components.Card{
		{Title: "Stores", Value: fmt.Sprint(k.StoresTotal), Note: fmt.Sprintf("+%d new", k.StoresNew)},
		{Title: "Top Ups", Value: egp(k.TransactionsEGP), Note: fmt.Sprintf("%s stores · avg %s", count(k.StoresToppedUp), avgTopUp)},
		{Title: "Refunds", Value: egp(k.RefundsEGP)},
		{Title: "Image Jobs", Value: fmt.Sprint(k.ImageJobsCount), Note: "cost " + egp(k.ImageJobsCostEGP)},
		{Title: "Video Jobs", Value: fmt.Sprint(k.VideoJobsCount), Note: "cost " + egp(k.VideoJobsCostEGP)},
		{Title: "Net Cashflow", Value: signed(k.NetCashflowEGP)},
		{Title: "Net Profit", Value: signed(k.NetProfit())},
		{Title: "Error Rate", Value: pct(k.ErrorRatePct), Note: fmt.Sprintf("%s errors of %s jobs", count(k.ErrorsTotal), count(k.JobsTotal))},
		{Title: "Tiers", Value: fmt.Sprintf("B %s  P %s", pct(k.TierBasicPct), pct(k.TierProPct)), Note: fmt.Sprintf("E %s  T %s", pct(k.TierElitePct), pct(k.TierTrialPct))},
		{Title: "Activity", Value: pct(k.ActivePct) + " active", Note: fmt.Sprintf("%s less · %s inactive", pct(k.LessActivePct), pct(k.InactivePct))},
		{Title: "Avg Processing", Value: "Pro " + seconds(k.ProAvgProcSecs), Note: fmt.Sprintf("Basic %s · Elite %s", seconds(k.BasicAvgProcSecs), seconds(k.EliteAvgProcSecs))},
		{Title: "USD → EGP", Value: rate, Note: rateNote},
	}
}

func (d *Dashboard) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var ranges []string
	for i, r := range d.ranges {
		if i == d.idx {
			ranges = append(ranges, title.Render("["+r.Label()+"]"))
			continue
		}
		ranges = append(ranges, subtle.Render(r.Label()))
	}
	header := title.Render("Dashboard") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(ranges)...)
	if d.loading {
		header += "  " + d.spinner.View()
	}

	body := subtle.Render("No figures loaded yet.")
	if cards := d.Cards(); len(cards) > 0 {
		body = components.RenderCardGrid(cards, d.width)
	}
	if d.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Negative)).Render("Last refresh failed: "+api.Message(d.err)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func joinSpaced(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
