package models

// Identity is the signed in operator as returned by the auth endpoints
type Identity struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role
func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// IsStaff reports whether the identity carries the staff role
func (i Identity) IsStaff() bool { return i.Role == RoleStaff }

// TablePrefs remembers how an operator left a page's table
type TablePrefs struct {
	Page           string
	VisibleColumns []string
	SortKey        string
	SortDirection  string
}

// ExportRecord logs a file written by an export
type ExportRecord struct {
	ID        int64  `json:"id"`
	Page      string `json:"page"`
	Format    string `json:"format"`
	Path      string `json:"path"`
	Rows      int    `json:"rows"`
	CreatedAt string `json:"created_at"`
}
