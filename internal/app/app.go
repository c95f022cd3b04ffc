// Package app wires the storage handle, repository and services together
package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// One App lives for exactly one invocation.
type App struct {
	db     *sql.DB
	repo   database.TodoRepository
	logger *slog.Logger

	// Service layer (business logic)
	TodoService todoservice.Service
}

// New creates a new App over an initialized database. The App takes
// ownership of db and closes it in Close.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	repo := cfg.repo
	if repo == nil {
		repo = database.NewTodoRepo(db)
	}

	return &App{
		db:          db,
		repo:        repo,
		logger:      logger,
		TodoService: todoservice.NewService(repo, logger),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.TodoRepository {
	return a.repo
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the storage handle
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
