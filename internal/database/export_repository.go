package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// ExportRepo keeps a log of written export files
type ExportRepo struct {
	db *sql.DB
}

// Record appends an export to the log and returns its id
func (r *ExportRepo) Record(ctx context.Context, rec models.ExportRecord) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO export_log (page, format, path, row_count) VALUES (?, ?, ?, ?)`,
		rec.Page, rec.Format, rec.Path, rec.Rows,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record export of %q: %w", rec.Page, err)
	}
	return result.LastInsertId()
}

// Recent returns up to limit exports, newest first
func (r *ExportRepo) Recent(ctx context.Context, limit int) ([]models.ExportRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, page, format, path, row_count, created_at
		 FROM export_log ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var records []models.ExportRecord
	for rows.Next() {
		var rec models.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Page, &rec.Format, &rec.Path, &rec.Rows, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
