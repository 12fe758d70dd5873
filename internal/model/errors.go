package model

import "fmt"

// ExitCode defines the CLI exit codes. Scripts can rely on them to tell
// usage mistakes apart from failures inside a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	// A user-aborted commit message also exits with this code.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates invalid arguments or flags. No subcommand
	// body ran.
	ExitUsageError ExitCode = 2

	// ExitSettingsError indicates the support settings could not be
	// loaded, validated, or saved.
	ExitSettingsError ExitCode = 3

	// ExitInputError indicates an interactive prompt or the editor
	// session failed (closed stdin, editor crash).
	ExitInputError ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
