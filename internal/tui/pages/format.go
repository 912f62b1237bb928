package pages

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/dressdash/internal/pricing"
	"github.com/thenoetrevino/dressdash/internal/tui/datatable"
	"github.com/thenoetrevino/dressdash/internal/tui/theme"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// money formats an amount with thousands separators and two decimals
func money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

func egp(v float64) string {
	return money(v) + " EGP"
}

// signed colors a profit figure
func signed(v float64) string {
	color := theme.Positive
	if v < 0 {
		color = theme.Negative
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(money(v))
}

// date shows the calendar date and time of an API timestamp
func date(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return datatable.Format(s)
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Local().Format("2006-01-02 15:04")
}

// ago shows an API timestamp relative to now
func ago(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return datatable.Format(s)
	}
	return humanize.Time(t)
}

func seconds(v *float64) string {
	if v == nil {
		return datatable.Placeholder
	}
	return fmt.Sprintf("%.1fs", *v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// tier renders a package label in its tier color
func tier(label string) string {
	if strings.TrimSpace(label) == "" {
		return datatable.Placeholder
	}
	color := theme.Subtle
	switch pricing.PackageTier(label) {
	case pricing.TierBasic:
		color = theme.Edit
	case pricing.TierPro:
		color = theme.Accent
	case pricing.TierElite:
		color = theme.Title
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(label)
}

// contains reports whether any of fields holds query, ignoring case
func contains(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
