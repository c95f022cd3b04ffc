// Package use holds all cli commands related to setting contextual information
// e.g., todo use ...
package use

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings for the current shell",
		Long: `Set and manage contextual information for the current shell session.

The 'use' command prints shell commands that set persistent context for
subsequent commands, eliminating the need to repeatedly pass flags.

Examples:
  eval $(todo use database ~/work/todos.db) # Use another todo file
  eval $(todo use database --clear)         # Back to the configured file
  todo use database --show                  # Show the file in use`,
		Args: cli.UsageArgs(cobra.NoArgs),
	}

	cmd.AddCommand(DatabaseCmd())

	return cmd
}
