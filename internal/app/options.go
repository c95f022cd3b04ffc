package app

import (
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	repo   database.TodoRepository
	logger *slog.Logger
}

// WithRepository replaces the SQLite repository, e.g. with an in-memory fake
func WithRepository(repo database.TodoRepository) Option {
	return func(cfg *appConfig) {
		cfg.repo = repo
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
