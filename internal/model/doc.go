// Package model defines the domain types and value objects for the
// qrpro CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (WifiCredentials, OutputFormat, PayloadKind, etc.) are
// transient, process-local values: a payload is validated, encoded, rendered,
// and written (or decoded and classified) within a single invocation.
// Nothing is persisted beyond the image files written to the output
// directory.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
