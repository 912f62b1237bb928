package exports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/models"
)

type historyResult []models.ExportRecord

func (h historyResult) Human() string {
	if len(h) == 0 {
		return styles.SubtitleStyle.Render("No exports yet.")
	}
	lines := make([]string, len(h))
	for i, rec := range h {
		when := rec.CreatedAt
		for _, layout := range []string{time.RFC3339Nano, time.DateTime} {
			if t, err := time.Parse(layout, rec.CreatedAt); err == nil {
				when = humanize.Time(t)
				break
			}
		}
		lines[i] = fmt.Sprintf("%s  %-14s %-4s %6s rows  %s",
			styles.LabelStyle.Render(fmt.Sprintf("#%d", rec.ID)), rec.Page, strings.ToUpper(rec.Format),
			humanize.Comma(int64(rec.Rows)), styles.SubtitleStyle.Render(rec.Path+" ("+when+")"))
	}
	return strings.Join(lines, "\n")
}

// HistoryCmd returns the export history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent exports, newest first",
		Args:  cobra.NoArgs,
		RunE: handler.Command(handler.Func(runHistory), func(cmd *cobra.Command) error {
			if limit, _ := cmd.Flags().GetInt("limit"); limit < 1 {
				return &cli.UsageError{Message: "--limit must be at least 1"}
			}
			return nil
		}),
	}

	cmd.Flags().Int("limit", 20, "Number of exports to show")
	handler.AddOutputFlags(cmd)
	return cmd
}

func runHistory(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	records, err := c.App.Repo.Exports.Recent(ctx, args.GetInt("limit", 20))
	if err != nil {
		return nil, fmt.Errorf("failed to load export history: %w", err)
	}
	if records == nil {
		records = []models.ExportRecord{}
	}
	return historyResult(records), nil
}
