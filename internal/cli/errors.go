package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// UsageError marks an argument-parsing failure. It is raised before any
// storage access and maps to ExitUsage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps err as a UsageError
func NewUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// IsUsageError reports whether err is (or wraps) a UsageError
func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// ExitCode maps an error returned by command execution to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case IsUsageError(err):
		return ExitUsage
	default:
		return ExitError
	}
}

// UsageArgs wraps a cobra positional-args validator so its failures are usage errors
func UsageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return NewUsageError(validator(cmd, args))
	}
}

// IDArgs requires exactly n positional arguments, the first being a todo id
func IDArgs(n int) cobra.PositionalArgs {
	return UsageArgs(cobra.MatchAll(cobra.ExactArgs(n), func(cmd *cobra.Command, args []string) error {
		_, err := ParseID(args[0])
		return err
	}))
}

// ParseID parses a todo id argument
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo ID: %s", arg)
	}
	return id, nil
}

// FlagError is installed with SetFlagErrorFunc so bad flags are usage errors
func FlagError(cmd *cobra.Command, err error) error {
	return NewUsageError(err)
}
