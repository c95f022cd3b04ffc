package todo

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo item",
		Long: `Delete a todo item. Its id is never handed out again.

An unknown id is reported as not found; the command still succeeds.`,
		Args: cli.IDArgs(1),
		RunE: runDelete,
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	err = cliInstance.App.TodoService.Delete(ctx, todoID)
	if errors.Is(err, todoservice.ErrTodoNotFound) {
		return formatter.NotFound(todoID)
	}
	if err != nil {
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
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

	return formatter.Ok("Deleted todo #%d", todoID)
}
