package database

import (
	"context"
	"testing"
)

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}
