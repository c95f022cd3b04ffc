package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/config/colors"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool
	var presetFlag string
	var databaseFlag string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write a config file with the default settings",
		Long: `Write ~/.config/todo-cli/config.yaml (or $XDG_CONFIG_HOME/todo-cli/config.yaml)
with the default theme filled in. An existing file is kept unless --force is given.

Examples:
  # Write the default config
  todo setup config

  # Use the Kanagawa Wave colors and a custom storage file
  todo setup config --preset wave --db ~/notes/todos.db --force

  # Show where the config file lives and whether it exists
  todo setup config --check
`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkFlag {
				return checkConfig(cmd)
			}
			return writeConfig(cmd, presetFlag, databaseFlag, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Show the config file location and status")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&presetFlag, "preset", "default", "Color preset: default, monochrome, dragon, wave or lotus")
	cmd.Flags().StringVar(&databaseFlag, "db", "", "Storage file to record in the config")

	return cmd
}

func checkConfig(cmd *cobra.Command) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	out := cmd.OutOrStdout()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(out, "✗ No config file at %s (defaults in use)\n", path)
		fmt.Fprintln(out, "  Run: todo setup config")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	if errs := config.Validate(data); len(errs) > 0 {
		fmt.Fprintf(out, "✗ Config file: %s\n", path)
		for _, e := range errs {
			fmt.Fprintf(out, "  %v\n", e)
		}
		return fmt.Errorf("config file has %d problem(s); defaults are used instead", len(errs))
	}

	fmt.Fprintf(out, "✓ Config file: %s\n", path)
	return nil
}

func writeConfig(cmd *cobra.Command, preset, database string, force bool) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return cli.NewUsageError(fmt.Errorf("config file already exists: %s (use --force to overwrite)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	cfg := config.Default()
	cfg.Database = database
	cfg.ColorScheme = *colors.GetPreset(preset)

	written, err := cfg.Save()
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote config: %s\n", written)
	return nil
}
