package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// Every pooled connection to :memory: would be a separate database
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// setupTestDBFile initializes a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.db")

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}

	return db, path
}

// createTestTodo inserts a todo directly and returns its id
func createTestTodo(t *testing.T, db *sql.DB, description string, completed bool) int64 {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO todos (description, completed) VALUES (?, ?)",
		description, completed,
	)
	if err != nil {
		t.Fatalf("Failed to insert todo: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read inserted id: %v", err)
	}
	return id
}
