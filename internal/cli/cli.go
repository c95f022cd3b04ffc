// Package cli holds the per-invocation CLI context, output formatting and
// exit codes shared by all commands
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false for apps injected through the context (tests)
	owned bool
}

// NewCLI opens the storage file named by settings and builds the app
func NewCLI(ctx context.Context, settings Settings) (*CLI, error) {
	settings = settings.withDefaults()

	path := database.ResolvePath(settings.DatabasePath)
	settings.Logger.Debug("opening storage", "path", path)

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db, app.WithLogger(settings.Logger))

	return &CLI{
		App:    application,
		Config: settings.Config,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// Settings are resolved by the root command before any storage access
type Settings struct {
	// DatabasePath is the storage file; empty selects the default location
	DatabasePath string
	Config       *config.Config
	Logger       *slog.Logger
}

func (s Settings) withDefaults() Settings {
	if s.Config == nil {
		s.Config = config.Default()
	}
	if s.Logger == nil {
		s.Logger = slog.Default()
	}
	return s
}
