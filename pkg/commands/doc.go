// Package commands implements the operations behind doot's CLI commands,
// keeping cmd/doot to flag wiring. Each Run function takes explicit
// dependencies (config, filesystem, output writer) so the full command
// flow is testable without a terminal.
package commands
