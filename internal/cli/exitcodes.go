package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution, including a todo id
	// that matched no row (reported as "not found", not as a failure).
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors (cannot open or create the file, disk I/O,
	// schema creation) or any unexpected failure.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing or unknown subcommands, wrong argument counts,
	// unknown flags, or ids that are not integers.
	ExitUsage = 2
)
