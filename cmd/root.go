// Package cmd wires the todo root command
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/guide"
	"github.com/thenoetrevino/todo/internal/cli/setup"
	"github.com/thenoetrevino/todo/internal/cli/todo"
	"github.com/thenoetrevino/todo/internal/cli/use"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// envFile is loaded from the working directory when present
const envFile = ".env"

// NewRootCmd builds the root command with every subcommand registered
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a personal todo list in a single SQLite file",
		Long: `todo keeps a list of todo items in an embedded SQLite file.

Each invocation performs one operation: add, list, complete, delete or update.`,
		Version:           Version,
		Args:              cli.UsageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: resolveSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewUsageError(errors.New("missing subcommand"))
		},
	}

	rootCmd.PersistentFlags().StringP("database", "d", "", "Path to the todo database file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.SetFlagErrorFunc(cli.FlagError)

	rootCmd.AddCommand(todo.Commands()...)
	rootCmd.AddCommand(guide.GuideCmd())
	rootCmd.AddCommand(setup.SetupCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

// resolveSettings loads .env and the config file, sets up logging and
// stores the resolved settings in the command context. It never touches
// storage.
func resolveSettings(cmd *cobra.Command, args []string) error {
	// A missing .env is the normal case
	_ = godotenv.Load(envFile)

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := logging.Init(cmd.ErrOrStderr(), verbose)

	// Load always returns a usable config; err names a file that was skipped
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("ignoring config file", "error", err)
	}

	dbPath, _ := cmd.Flags().GetString("database")
	if dbPath == "" {
		dbPath = cfg.Database
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithSettings(ctx, cli.Settings{
		DatabasePath: dbPath,
		Config:       cfg,
		Logger:       logger,
	}))

	return nil
}

// Execute runs the root command with os.Args and returns the process exit code
func Execute() int {
	// Interrupts cancel the context so a command blocked on the SQLite lock
	// returns and closes storage on its way out
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return run(ctx, NewRootCmd(), os.Args[1:], os.Stderr)
}

// run executes rootCmd with args and reports failures on stderr. Usage
// errors are followed by the usage text of the command that failed.
func run(ctx context.Context, rootCmd *cobra.Command, args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cli.IsUsageError(err) && cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		slog.Debug("command failed", "error", err, "exit_code", cli.ExitCode(err))
	}

	return cli.ExitCode(err)
}
