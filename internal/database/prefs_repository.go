package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// PrefsRepo stores per page table preferences
type PrefsRepo struct {
	db *sql.DB
}

// Get returns the preferences saved for page, or ErrNotFound
func (r *PrefsRepo) Get(ctx context.Context, page string) (models.TablePrefs, error) {
	prefs := models.TablePrefs{Page: page}
	var columns string
	err := r.db.QueryRowContext(ctx,
		`SELECT visible_columns, sort_key, sort_direction FROM table_prefs WHERE page = ?`,
		page,
	).Scan(&columns, &prefs.SortKey, &prefs.SortDirection)
	if errors.Is(err, sql.ErrNoRows) {
		return prefs, ErrNotFound
	}
	if err != nil {
		return prefs, fmt.Errorf("failed to load table prefs for %q: %w", page, err)
	}
	if err := json.Unmarshal([]byte(columns), &prefs.VisibleColumns); err != nil {
		return prefs, fmt.Errorf("corrupt visible columns for %q: %w", page, err)
	}
	return prefs, nil
}

// Save upserts the preferences for prefs.Page
func (r *PrefsRepo) Save(ctx context.Context, prefs models.TablePrefs) error {
	columns := prefs.VisibleColumns
	if columns == nil {
		columns = []string{}
	}
	encoded, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO table_prefs (page, visible_columns, sort_key, sort_direction)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(page) DO UPDATE SET
			visible_columns = excluded.visible_columns,
			sort_key = excluded.sort_key,
			sort_direction = excluded.sort_direction,
			updated_at = CURRENT_TIMESTAMP`,
		prefs.Page, string(encoded), prefs.SortKey, prefs.SortDirection,
	)
	if err != nil {
		return fmt.Errorf("failed to save table prefs for %q: %w", prefs.Page, err)
	}
	return nil
}
