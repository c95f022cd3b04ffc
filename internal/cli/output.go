package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/config"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	Styles *styles.Styles
}

// NewOutputFormatter reads the --json and --quiet flags of cmd and binds
// the formatter to the command's output stream
func NewOutputFormatter(cmd *cobra.Command, cfg *config.Config) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	if cfg == nil {
		cfg = config.Default()
	}

	out := cmd.OutOrStdout()
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    out,
		Styles: styles.New(out, cfg.ColorScheme),
	}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

// Success outputs a successful result as a JSON envelope. The fields of
// data are merged into the envelope next to "success".
func (f *OutputFormatter) Success(data map[string]any) error {
	envelope := map[string]any{"success": true}
	for k, v := range data {
		envelope[k] = v
	}
	return json.NewEncoder(f.Out).Encode(envelope)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// Only JSON mode writes anything: human-readable errors are printed once
// by the root command on stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if !f.JSON {
		return nil
	}

	errData := map[string]any{
		"code":    code,
		"message": message,
	}
	if suggestion != "" {
		errData["suggestion"] = suggestion
	}
	return json.NewEncoder(f.Out).Encode(map[string]any{
		"success": false,
		"error":   errData,
	})
}

// ID prints a bare id (quiet mode)
func (f *OutputFormatter) ID(id int64) error {
	_, err := fmt.Fprintf(f.Out, "%d\n", id)
	return err
}

// Ok prints "✓ <msg>"
func (f *OutputFormatter) Ok(format string, args ...any) error {
	_, err := fmt.Fprintln(f.Out, f.Styles.Ok(fmt.Sprintf(format, args...)))
	return err
}

// NotFound reports a todo id that matched no row. This is an informational
// outcome: the invocation still succeeds.
func (f *OutputFormatter) NotFound(id int64) error {
	if f.Quiet {
		return nil
	}
	if f.JSON {
		return f.ErrorWithSuggestion("TODO_NOT_FOUND",
			fmt.Sprintf("todo %d not found", id),
			"Use 'todo list' to see existing todos")
	}
	_, err := fmt.Fprintln(f.Out, f.Styles.Fail(fmt.Sprintf("Todo #%d not found", id)))
	return err
}
