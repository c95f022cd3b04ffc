package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/database"
)

// TestDBFileName is the storage file created inside each test's temp dir
const TestDBFileName = "todos.db"

// SetupTestDB creates a file-backed database with the full schema in a
// temp dir. The handle is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.InitDB(context.Background(), TestDBPath(t))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// TestDBPath returns a fresh storage file path inside a temp dir
func TestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), TestDBFileName)
}

// SetupTestApp creates an app backed by a fresh test database
func SetupTestApp(t *testing.T) (*app.App, *sql.DB) {
	t.Helper()
	db := SetupTestDB(t)
	return app.New(db), db
}

// CreateTestTodo inserts a pending todo and returns its id
func CreateTestTodo(t *testing.T, db *sql.DB, description string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO todos (description) VALUES (?) RETURNING id", description).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test todo: %v", err)
	}
	return id
}

// CompleteTestTodo marks a todo as completed
func CompleteTestTodo(t *testing.T, db *sql.DB, id int64) {
	t.Helper()

	if _, err := db.ExecContext(context.Background(),
		"UPDATE todos SET completed = 1 WHERE id = ?", id); err != nil {
		t.Fatalf("Failed to complete test todo: %v", err)
	}
}

// GetTestTodo reads a todo row directly. ok is false when no row matches.
func GetTestTodo(t *testing.T, db *sql.DB, id int64) (description string, completed bool, ok bool) {
	t.Helper()

	err := db.QueryRowContext(context.Background(),
		"SELECT description, completed FROM todos WHERE id = ?", id).Scan(&description, &completed)
	if err == sql.ErrNoRows {
		return "", false, false
	}
	if err != nil {
		t.Fatalf("Failed to read test todo: %v", err)
	}
	return description, completed, true
}

// CountTestTodos returns the number of rows in the todos table
func CountTestTodos(t *testing.T, db *sql.DB) int {
	t.Helper()

	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM todos").Scan(&n); err != nil {
		t.Fatalf("Failed to count test todos: %v", err)
	}
	return n
}
