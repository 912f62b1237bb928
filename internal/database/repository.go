package database

import "database/sql"

// Repository groups the local stores. It composes domain-specific
// repositories so callers can depend on just the one they need.
type Repository struct {
	Sessions *SessionRepo
	Prefs    *PrefsRepo
	Exports  *ExportRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Sessions: &SessionRepo{db: db},
		Prefs:    &PrefsRepo{db: db},
		Exports:  &ExportRepo{db: db},
	}
}
