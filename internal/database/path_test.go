package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := DefaultPath()
	assert.Equal(t, filepath.Join(home, ".local", "share", "todo-cli", "todos.db"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err, "data directory should be created on demand")
	assert.True(t, info.IsDir())
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "/tmp/custom.db", ResolvePath("/tmp/custom.db"))
	assert.Equal(t, DefaultPath(), ResolvePath(""))
}
