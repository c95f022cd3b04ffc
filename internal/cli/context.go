package cli

import (
	"context"

	"github.com/thenoetrevino/todo/internal/app"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	settingsKey contextKey = "settings"
	appKey      contextKey = "app"
)

// WithSettings stores the resolved settings in ctx
func WithSettings(ctx context.Context, settings Settings) context.Context {
	return context.WithValue(ctx, settingsKey, settings)
}

// SettingsFromContext returns the settings stored by WithSettings, or the defaults
func SettingsFromContext(ctx context.Context) Settings {
	if settings, ok := ctx.Value(settingsKey).(Settings); ok {
		return settings.withDefaults()
	}
	return Settings{}.withDefaults()
}

// WithApp injects a prebuilt app into ctx. GetCLIFromContext then uses it
// instead of opening storage; the caller keeps ownership of the app.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for this invocation, opening storage
// unless an app was injected with WithApp
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	settings := SettingsFromContext(ctx)

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: settings.Config}, nil
	}

	return NewCLI(ctx, settings)
}
