// Package setup provides commands that prepare the user's environment
package setup

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up todo configuration",
		Long:  `Write or inspect the todo configuration file.`,
		Args:  cli.UsageArgs(cobra.NoArgs),
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
