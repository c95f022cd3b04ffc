package use

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
)

// DatabaseCmd returns the use database subcommand
func DatabaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "database [path]",
		Short: "Set the todo file for the current shell session",
		Long: `Set the todo storage file using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(todo use database ~/work/todos.db)   # Use another file
  eval $(todo use database --clear)           # Clear the override
  todo use database --show                    # Show the file in use

The TODO_DATABASE environment variable will be set in your current shell
session only. The --database flag on other commands takes precedence over
this environment variable.`,
		Aliases: []string{"db"},
		Args:    cli.UsageArgs(cobra.MaximumNArgs(1)),
		RunE:    runUseDatabase,
	}

	cmd.Flags().Bool("clear", false, "Clear the current database override")
	cmd.Flags().Bool("show", false, "Show the database file in use")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseDatabase(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	out := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if showFlag {
		return showCurrentDatabase(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(stderr, "Would clear %s\n", config.EnvDatabase)
			return nil
		}
		fmt.Fprintf(out, "unset %s\n", config.EnvDatabase)
		fmt.Fprintf(stderr, "Cleared database override\n")
		return nil
	}

	if len(args) == 0 {
		return cli.NewUsageError(errors.New("database path required\nUsage: eval $(todo use database <path>)"))
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", args[0], err)
	}

	if dryRun {
		// Validate without writing anything
		if err := checkParentDir(path); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Would export %s=%s\n", config.EnvDatabase, shellescape.Quote(path))
		return nil
	}

	// Open (and create) the file now so a bad path fails here, not on the next command
	settings := cli.SettingsFromContext(cmd.Context())
	settings.DatabasePath = path
	cliInstance, err := cli.NewCLI(cmd.Context(), settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	fmt.Fprintf(out, "export %s=%s\n", config.EnvDatabase, shellescape.Quote(path))
	fmt.Fprintf(stderr, "Using todo file %s\n", path)
	return nil
}

// checkParentDir reports an error unless the directory that would hold path exists
func checkParentDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to use %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("failed to use %s: %s is not a directory", path, dir)
	}
	return nil
}

func showCurrentDatabase(cmd *cobra.Command) error {
	settings := cli.SettingsFromContext(cmd.Context())

	path := database.ResolvePath(settings.DatabasePath)
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", path, databaseSource(cmd, settings.DatabasePath))
	return nil
}

// databaseSource names where the storage path came from, in precedence order
func databaseSource(cmd *cobra.Command, resolved string) string {
	switch {
	case cmd.Flags().Changed("database"):
		return "--database flag"
	case os.Getenv(config.EnvDatabase) != "":
		return config.EnvDatabase
	case resolved != "":
		return "config file"
	default:
		return "default"
	}
}
