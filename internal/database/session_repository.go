package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// SessionRepo persists the signed in identity between runs
type SessionRepo struct {
	db *sql.DB
}

// Load returns the stored identity, or ErrNotFound when signed out
func (r *SessionRepo) Load(ctx context.Context) (models.Identity, error) {
	var id models.Identity
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, full_name, email, role FROM sessions WHERE id = 1`,
	).Scan(&id.Token, &id.UserID, &id.FullName, &id.Email, &id.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrNotFound
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("failed to load session: %w", err)
	}
	return id, nil
}

// Save replaces the stored identity
func (r *SessionRepo) Save(ctx context.Context, id models.Identity) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token, user_id, full_name, email, role)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			token = excluded.token,
			user_id = excluded.user_id,
			full_name = excluded.full_name,
			email = excluded.email,
			role = excluded.role,
			created_at = CURRENT_TIMESTAMP`,
		id.Token, id.UserID, id.FullName, id.Email, id.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to save session for user %q: %w", id.UserID, err)
	}
	return nil
}

// Delete forgets the stored identity. Deleting when signed out is not an error.
func (r *SessionRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
