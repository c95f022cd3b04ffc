package todo

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id> <description>",
		Short: "Update a todo item's description",
		Long: `Replace the description of a todo item. The id and completion
state are left untouched.

An unknown id is reported as not found; the command still succeeds.`,
		Args: cli.IDArgs(2),
		RunE: runUpdate,
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, err := cli.ParseID(args[0])
	if err != nil {
		return cli.NewUsageError(err)
	}
	description := args[1]

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	err = cliInstance.App.TodoService.Update(ctx, todoservice.UpdateRequest{
		ID:          todoID,
		Description: description,
	})
	if errors.Is(err, todoservice.ErrTodoNotFound) {
		return formatter.NotFound(todoID)
	}
	if err != nil {
		if fmtErr := formatter.Error("UPDATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if formatter.Quiet {
		return formatter.ID(todoID)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"todo_id":     todoID,
			"description": description,
		})
	}

	return formatter.Ok("Updated todo #%d: %s", todoID, description)
}
