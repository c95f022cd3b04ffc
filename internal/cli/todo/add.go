package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new todo item",
		Long: `Add a new todo item. The store assigns the next id.

Examples:
  # Add a todo
  todo add "buy milk"

  # Quiet mode for bash capture
  TODO_ID=$(todo add "walk dog" --quiet)
`,
		Args: cli.UsageArgs(cobra.ExactArgs(1)),
		RunE: runAdd,
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := args[0]

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	todo, err := cliInstance.App.TodoService.Add(ctx, description)
	if err != nil {
		if fmtErr := formatter.Error("ADD_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		return formatter.ID(todo.ID)
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{"todo": todo})
	}

	return formatter.Ok("Added todo #%d: %s", todo.ID, todo.Description)
}
