// Package guide renders the built-in workflow guide
package guide

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
)

//go:embed guide.md
var guideContent string

// wordWrap is the column glamour wraps paragraphs at
const wordWrap = 80

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the todo workflow guide",
		Long: `Show a short guide to the todo commands, storage selection and
scripting flags.

Use --raw to print the markdown source, e.g. for agent context hooks.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputGuide(cmd, raw)
		},
	}

	cmd.Flags().Bool("raw", false, "Print the guide as plain markdown")

	return cmd
}

func outputGuide(cmd *cobra.Command, raw bool) error {
	out := cmd.OutOrStdout()
	if raw {
		_, err := fmt.Fprint(out, guideContent)
		return err
	}

	rendered, err := Render(guideContent)
	if err != nil {
		slog.Debug("glamour render failed, printing markdown", "error", err)
		_, err = fmt.Fprint(out, guideContent)
		return err
	}

	_, err = fmt.Fprint(out, rendered)
	return err
}

// Render renders markdown for the terminal
func Render(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
