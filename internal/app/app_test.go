package app

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "todos.db"))
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)

	app := New(db)
	defer func() { _ = app.Close() }()

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.TodoService == nil {
		t.Error("Expected TodoService to be initialized")
	}
	if _, ok := app.Repo().(*database.TodoRepo); !ok {
		t.Errorf("Expected SQLite repository by default, got %T", app.Repo())
	}
	if app.Logger() == nil {
		t.Error("Expected a default logger")
	}
}

func TestNew_ServiceUsesDatabase(t *testing.T) {
	db := setupTestDB(t)
	app := New(db)
	defer func() { _ = app.Close() }()

	ctx := context.Background()
	todo, err := app.TodoService.Add(ctx, "wired")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var description string
	if err := db.QueryRowContext(ctx, "SELECT description FROM todos WHERE id = ?", todo.ID).Scan(&description); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if description != "wired" {
		t.Errorf("description = %q, want wired", description)
	}
}

type stubRepo struct {
	database.TodoRepository
	listed bool
}

func (s *stubRepo) List(_ context.Context, _ models.ListFilter) ([]*models.Todo, error) {
	s.listed = true
	return nil, nil
}

func TestWithOptions(t *testing.T) {
	repo := &stubRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := New(nil, WithRepository(repo), WithLogger(logger))

	if app.Repo() != repo {
		t.Error("Expected injected repository")
	}
	if app.Logger() != logger {
		t.Error("Expected injected logger")
	}
	if _, err := app.TodoService.List(context.Background(), todoservice.ListRequest{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !repo.listed {
		t.Error("Expected service to use injected repository")
	}
}

func TestClose(t *testing.T) {
	db := setupTestDB(t)
	app := New(db)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
	if err := db.PingContext(context.Background()); err == nil {
		t.Error("Expected database to be closed")
	}

	// Apps without a database close cleanly
	if err := New(nil, WithRepository(&stubRepo{})).Close(); err != nil {
		t.Errorf("Expected Close without db to succeed, got error: %v", err)
	}
}
