// Package exports writes list pages to CSV or HTML files without the TUI
package exports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dressdash/internal/cli"
	"github.com/thenoetrevino/dressdash/internal/cli/handler"
	"github.com/thenoetrevino/dressdash/internal/cli/styles"
	"github.com/thenoetrevino/dressdash/internal/tui/pages"
)

var errAdminOnly = errors.New("only admins can export users")

type exportResult struct {
	Page   string `json:"page"`
	Format string `json:"format"`
	Rows   int    `json:"rows"`
	Path   string `json:"path"`
}

func (r exportResult) GetID() string { return r.Path }

func (r exportResult) Human() string {
	return styles.RenderFields([]styles.Field{
		{Label: "Exported", Value: fmt.Sprintf("%d %s rows", r.Rows, r.Page)},
		{Label: "Format", Value: strings.ToUpper(r.Format)},
		{Label: "File", Value: r.Path},
	})
}

// ExportCmd returns the export command with its history subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <resource>",
		Short: "Export a list page to a CSV or HTML file",
		Long: fmt.Sprintf(`Export every row of a list page, after filtering, to a file in the
configured export directory.

Resources: %s

Examples:
  dressdash export stores
  dressdash export image-jobs --format html --search "Nile"
  dressdash export transactions --quiet
`, strings.Join(pages.ListPageNames(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(handler.Func(runExport), parseExportFlags),
	}

	cmd.Flags().String("format", "", "File format: csv or html (default from config)")
	cmd.Flags().String("search", "", "Only export rows matching this text")
	handler.AddOutputFlags(cmd)

	cmd.AddCommand(HistoryCmd())
	return cmd
}

func parseExportFlags(cmd *cobra.Command) error {
	if _, err := resource(cmd); err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		if _, err := handler.NewFlagParser(cmd).ParseFormat("format"); err != nil {
			return err
		}
	}
	return nil
}

func resource(cmd *cobra.Command) (string, error) {
	names := pages.ListPageNames()
	args := cmd.Flags().Args()
	if len(args) == 0 {
		return "", &cli.UsageError{Message: "resource is required, one of: " + strings.Join(names, ", ")}
	}
	name := strings.ToLower(strings.TrimSpace(args[0]))
	for _, n := range names {
		if n == name {
			return name, nil
		}
	}
	return "", &cli.UsageError{Message: fmt.Sprintf("unknown resource %q, expected one of: %s", args[0], strings.Join(names, ", "))}
}

func runExport(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if err := c.RequireSession(); err != nil {
		return nil, err
	}
	cmd := args.GetCmd()
	name, err := resource(cmd)
	if err != nil {
		return nil, err
	}
	if name == "users" && !c.App.Session.IsAdmin() {
		return nil, errAdminOnly
	}

	format := c.App.ExportFormat()
	if cmd.Flags().Changed("format") {
		if format, err = handler.NewFlagParser(cmd).ParseFormat("format"); err != nil {
			return nil, err
		}
	}

	page, _ := pages.LookupListPage(&pages.Deps{
		Ctx:      ctx,
		Client:   c.App.Client,
		Exporter: c.App.Exporter,
		Config:   c.App.Config,
		Logger:   c.App.Logger,
	}, name)
	if err := page.Load(ctx, args.GetString("search", "")); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}

	table := page.ExportTable()
	path, err := c.App.Exporter.Export(ctx, name, format, table)
	if err != nil {
		return nil, err
	}
	return exportResult{Page: name, Format: string(format), Rows: len(table.Rows), Path: path}, nil
}
