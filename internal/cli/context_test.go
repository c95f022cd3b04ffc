package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
)

func TestSettingsFromContext_Defaults(t *testing.T) {
	settings := SettingsFromContext(context.Background())

	assert.Empty(t, settings.DatabasePath)
	assert.NotNil(t, settings.Config)
	assert.NotNil(t, settings.Logger)
}

func TestSettingsFromContext_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Database = "/tmp/elsewhere.db"

	ctx := WithSettings(context.Background(), Settings{DatabasePath: "/tmp/x.db", Config: cfg})
	settings := SettingsFromContext(ctx)

	assert.Equal(t, "/tmp/x.db", settings.DatabasePath)
	assert.Same(t, cfg, settings.Config)
	assert.NotNil(t, settings.Logger)
}

func TestGetCLIFromContext_OpensStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")
	ctx := WithSettings(context.Background(), Settings{DatabasePath: path})

	cliInstance, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	require.NotNil(t, cliInstance.App)
	assert.FileExists(t, path)

	todo, err := cliInstance.App.TodoService.Add(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, int64(1), todo.ID)

	assert.NoError(t, cliInstance.Close())
}

func TestGetCLIFromContext_StorageError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "todos.db")
	ctx := WithSettings(context.Background(), Settings{DatabasePath: path})

	_, err := GetCLIFromContext(ctx)
	require.Error(t, err)
	assert.Equal(t, ExitError, ExitCode(err))
}

func TestGetCLIFromContext_InjectedAppNotClosed(t *testing.T) {
	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	injected := app.New(db)
	t.Cleanup(func() { _ = injected.Close() })

	ctx := WithApp(context.Background(), injected)
	cliInstance, err := GetCLIFromContext(ctx)
	require.NoError(t, err)
	assert.Same(t, injected, cliInstance.App)

	require.NoError(t, cliInstance.Close())

	// the injected handle is still usable
	_, err = injected.TodoService.Add(context.Background(), "still open")
	assert.NoError(t, err)
}
