// Package todo provides the add, list, complete, delete and update commands
package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

// Commands returns the todo subcommands, registered directly on the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		CompleteCmd(),
		DeleteCmd(),
		UpdateCmd(),
	}
}

// openCLI initializes the CLI for one command. Initialization failures are
// reported through the formatter and returned.
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return nil, err
	}
	return cliInstance, nil
}

// closeCLI releases the storage handle
func closeCLI(cliInstance *cli.CLI) {
	if err := cliInstance.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}

// newFormatter builds the formatter for cmd from the resolved settings
func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	settings := cli.SettingsFromContext(cmd.Context())
	return cli.NewOutputFormatter(cmd, settings.Config)
}
