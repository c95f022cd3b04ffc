package todo

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	todoservice "github.com/thenoetrevino/todo/internal/services/todo"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todo items",
		Long: `List todo items in id order.

--completed shows only completed items, --pending only pending ones.
Passing both (or neither) lists everything.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runList,
	}

	cmd.Flags().BoolP("completed", "c", false, "Show only completed items")
	cmd.Flags().BoolP("pending", "p", false, "Show only pending items")

	cli.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	completed, _ := cmd.Flags().GetBool("completed")
	pending, _ := cmd.Flags().GetBool("pending")

	formatter := newFormatter(cmd)

	cliInstance, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI(cliInstance)

	result, err := cliInstance.App.TodoService.List(ctx, todoservice.ListRequest{
		Completed: completed,
		Pending:   pending,
	})
	if err != nil {
		if fmtErr := formatter.Error("LIST_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if formatter.Quiet {
		for _, todo := range result.Todos {
			if err := formatter.ID(todo.GetID()); err != nil {
				return err
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(map[string]any{
			"filter": result.Filter.String(),
			"todos":  result.Todos,
			"total":  result.Total,
		})
	}

	return formatter.Styles.RenderList(formatter.Out, result.Todos)
}
