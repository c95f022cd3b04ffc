package todo

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// CompleteCmd returns the complete subcommand
func CompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo item as complete",
		Long: `Mark a todo item as complete. Completing an item twice is fine.

An unknown id is reported as not found; the command still succeeds.`,
		Args: cli.IDArgs(1),
		RunE: runComplete,
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runComplete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, err := cli.ParseID(args[0])
	if err != nil {
		return cli.NewUsageError(err)
	}

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	err = cliInstance.App.TodoService.Complete(ctx, todoID)
	if errors.Is(err, todoservice.ErrTodoNotFound) {
		return formatter.NotFound(todoID)
	}
	if err != nil {
		if fmtErr := formatter.Error("COMPLETE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if formatter.Quiet {
		return formatter.ID(todoID)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{"todo_id": todoID})
	}

	return formatter.Ok("Marked todo #%d as complete", todoID)
}
