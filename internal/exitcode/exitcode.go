// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, declined prompt input).
	UserError = 1

	// ConfigError indicates an unusable config file, flag or environment setting.
	ConfigError = 2

	// StorageError indicates the task store could not be opened or written.
	StorageError = 3
)
