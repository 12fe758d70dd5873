// Package model defines the domain types and value objects for the bb CLI.
//
// This package contains plain data structures with no external dependencies.
// The Builder is the only stateful entity: it is created once per process
// invocation, shared by reference with the subcommand that runs, and
// discarded at exit. Nothing here is persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
