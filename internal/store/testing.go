package store

import (
	"database/sql"
	"testing"
)

// NewTestStore opens an in-memory database with migrations applied.
// This is only intended for use in tests.
func NewTestStore(t testing.TB) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	// Each pooled connection would get its own :memory: database
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return &Store{db: db}
}
