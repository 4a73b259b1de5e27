// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, invalid
	// priority).
	UserError = 1

	// ConfigError indicates a data-directory or path resolution error.
	ConfigError = 2

	// StorageError indicates a storage failure (filesystem error or
	// corrupt task file).
	StorageError = 3
)
