// Package export writes table snapshots to CSV or HTML files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/domonda/go-retable"
	"github.com/domonda/go-retable/csvtable"
	"github.com/domonda/go-retable/htmltable"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// ErrNothingToExport is returned for a table without rows
var ErrNothingToExport = errors.New("nothing to export for the current filters")

// Format is an export file format
type Format string

const (
	CSV  Format = "csv"
	HTML Format = "html"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case CSV, "":
		return CSV, nil
	case HTML:
		return HTML, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want csv or html)", s)
}

// Table is the text of a table as the operator sees it
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func (t Table) view() retable.View {
	return &retable.StringsView{Tit: t.Title, Cols: t.Columns, Rows: t.Rows}
}

// Write encodes t to w
func Write(ctx context.Context, w io.Writer, format Format, t Table) error {
	if len(t.Rows) == 0 {
		return ErrNothingToExport
	}
	switch format {
	case HTML:
		return htmltable.NewWriter[any]().
			WithHeaderRow(true).
			WriteView(ctx, w, t.view())
	default:
		return csvtable.NewWriter[any]().
			WithHeaderRow(true).
			WithDelimiter(',').
			WithNewLine("\n").
			WriteView(ctx, w, t.view())
	}
}

// Recorder logs written exports
type Recorder interface {
	Record(ctx context.Context, rec models.ExportRecord) (int64, error)
}

// Exporter writes export files into a directory
type Exporter struct {
	Dir      string
	Recorder Recorder // optional
	Now      func() time.Time
	Logger   *slog.Logger
}

var unsafeName = regexp.MustCompile(`[^a-z0-9]+`)

// FileName builds <page>-<timestamp>.<ext>
func FileName(page string, format Format, at time.Time) string {
	slug := strings.Trim(unsafeName.ReplaceAllString(strings.ToLower(page), "-"), "-")
	if slug == "" {
		slug = "export"
	}
	return fmt.Sprintf("%s-%s.%s", slug, at.Format("20060102-150405"), format)
}

// Export writes t to a new file and returns its path
func (e *Exporter) Export(ctx context.Context, page string, format Format, t Table) (string, error) {
	if len(t.Rows) == 0 {
		return "", ErrNothingToExport
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.Dir, FileName(page, format, now()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := Write(ctx, file, format, t); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	logger.Info("exported table", "page", page, "format", format, "rows", len(t.Rows), "path", path)

	if e.Recorder != nil {
		rec := models.ExportRecord{Page: page, Format: string(format), Path: path, Rows: len(t.Rows)}
		if _, err := e.Recorder.Record(ctx, rec); err != nil {
			// the file exists, a missing log entry is not worth failing for
			logger.Warn("failed to record export", "path", path, "error", err)
		}
	}
	return path, nil
}
