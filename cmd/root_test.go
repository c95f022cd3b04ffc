package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/cli"
)

// isolateEnv points HOME and the config dir at temp dirs so tests never
// see the real user's config or data
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("TODO_DATABASE", "")
	t.Setenv("TODO_THEME_FILE", "")
	return home
}

// runTodo executes one invocation and returns stdout, stderr and the exit code
func runTodo(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&stdout)

	code := run(context.Background(), rootCmd, args, &stderr)
	return stdout.String(), stderr.String(), code
}

func TestScenario(t *testing.T) {
	isolateEnv(t)
	db := filepath.Join(t.TempDir(), "todos.db")

	out, _, code := runTodo(t, "--database", db, "list")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, out, "Total: 0 items")

	out, _, code = runTodo(t, "--database", db, "add", "buy milk")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Added todo #1: buy milk\n", out)

	out, _, code = runTodo(t, "-d", db, "add", "walk dog")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Added todo #2: walk dog\n", out)

	out, _, code = runTodo(t, "-d", db, "complete", "1")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Marked todo #1 as complete\n", out)

	out, _, code = runTodo(t, "-d", db, "list", "--pending")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, out, "[ ] #2   walk dog")
	assert.NotContains(t, out, "buy milk")
	assert.Contains(t, out, "Total: 1 items")

	out, _, code = runTodo(t, "-d", db, "delete", "1")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Deleted todo #1\n", out)

	out, _, code = runTodo(t, "-d", db, "complete", "1")
	assert.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✗ Todo #1 not found\n", out)

	out, _, code = runTodo(t, "-d", db, "add", "call mom")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Added todo #3: call mom\n", out)

	entries, err := os.ReadDir(filepath.Dir(db))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "state must live in exactly one file")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no subcommand", []string{}},
		{"unknown subcommand", []string{"frobnicate"}},
		{"unknown flag", []string{"list", "--bogus"}},
		{"add without description", []string{"add"}},
		{"complete non-integer id", []string{"complete", "abc"}},
		{"delete without id", []string{"delete"}},
		{"update missing description", []string{"update", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			dir := t.TempDir()
			db := filepath.Join(dir, "todos.db")

			args := append([]string{"--database", db}, tt.args...)
			out, stderr, code := runTodo(t, args...)

			assert.Equal(t, cli.ExitUsage, code)
			assert.Empty(t, out)
			assert.True(t, strings.HasPrefix(stderr, "Error: "), "stderr: %q", stderr)
			assert.Contains(t, stderr, "Usage:")

			_, err := os.Stat(db)
			assert.True(t, os.IsNotExist(err), "usage errors must not touch storage")
		})
	}
}

func TestStorageError(t *testing.T) {
	isolateEnv(t)

	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	out, stderr, code := runTodo(t, "--database", filepath.Join(blocker, "todos.db"), "list")
	assert.Equal(t, cli.ExitError, code)
	assert.Empty(t, out)
	assert.NotContains(t, stderr, "Usage:")

	// one line, no duplicate log record
	assert.True(t, strings.HasPrefix(stderr, "Error: failed to initialize database: failed to open database: "), "stderr: %q", stderr)
	assert.Equal(t, 1, strings.Count(stderr, "\n"), "stderr: %q", stderr)
}

func TestDatabasePathPrecedence(t *testing.T) {
	home := isolateEnv(t)
	dir := t.TempDir()
	flagDB := filepath.Join(dir, "flag.db")
	envDB := filepath.Join(dir, "env.db")
	configDB := filepath.Join(dir, "config.db")

	configDir := filepath.Join(home, ".config", "todo-cli")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("database: "+configDB+"\n"), 0o644))

	_, _, code := runTodo(t, "add", "from config")
	require.Equal(t, cli.ExitSuccess, code)
	assert.FileExists(t, configDB)

	t.Setenv("TODO_DATABASE", envDB)
	_, _, code = runTodo(t, "add", "from env")
	require.Equal(t, cli.ExitSuccess, code)
	assert.FileExists(t, envDB)

	_, _, code = runTodo(t, "--database", flagDB, "add", "from flag")
	require.Equal(t, cli.ExitSuccess, code)
	assert.FileExists(t, flagDB)

	// each file got exactly one todo
	for _, db := range []string{configDB, envDB, flagDB} {
		out, _, code := runTodo(t, "--database", db, "list", "--quiet")
		require.Equal(t, cli.ExitSuccess, code)
		assert.Equal(t, "1\n", out, db)
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	home := isolateEnv(t)

	_, _, code := runTodo(t, "add", "default location")
	require.Equal(t, cli.ExitSuccess, code)
	assert.FileExists(t, filepath.Join(home, ".local", "share", "todo-cli", "todos.db"))
}

func TestVerboseLogsToStderr(t *testing.T) {
	isolateEnv(t)
	db := filepath.Join(t.TempDir(), "todos.db")

	out, stderr, code := runTodo(t, "-v", "-d", db, "add", "x")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Added todo #1: x\n", out)
	assert.NotEmpty(t, stderr)
}

func TestVersion(t *testing.T) {
	isolateEnv(t)

	out, _, code := runTodo(t, "--version")
	assert.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, out, Version)
}

func TestGuideNeedsNoStorage(t *testing.T) {
	home := isolateEnv(t)

	out, _, code := runTodo(t, "guide", "--raw")
	assert.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, out, "# todo workflow")
	assert.NoDirExists(t, filepath.Join(home, ".local", "share", "todo-cli"))
}

func TestInvalidConfigIsIgnored(t *testing.T) {
	home := isolateEnv(t)
	configDir := filepath.Join(home, ".config", "todo-cli")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"),
		[]byte("theme:\n  preset: solarized\n"), 0o644))

	db := filepath.Join(t.TempDir(), "todos.db")
	out, stderr, code := runTodo(t, "-d", db, "add", "still works")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "✓ Added todo #1: still works\n", out)
	assert.Contains(t, stderr, "ignoring config file")
}
