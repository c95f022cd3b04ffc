package database

import (
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// DataDirName is the per-user data directory, relative to the home directory
	DataDirName = ".local/share/todo-cli"

	// FileName is the name of the storage file inside the data directory
	FileName = "todos.db"
)

// DefaultPath returns ~/.local/share/todo-cli/todos.db, creating the
// directory if it does not exist yet. When the home directory cannot be
// resolved the data directory is placed under the current directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}

	dataDir := filepath.Join(home, DataDirName)
	// Best effort: a failure here surfaces when the file is opened
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		slog.Debug("failed to create data directory", "dir", dataDir, "error", err)
	}

	return filepath.Join(dataDir, FileName)
}

// ResolvePath returns explicit when set, otherwise DefaultPath()
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultPath()
}
