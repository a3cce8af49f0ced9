// Package command provides CLI command definitions for todovault-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: Root command and global flags
//   - login.go: Authentication command
//   - todo.go: Todo list, add, done, edit, and rm commands
//   - status.go: Server health command
//
// Commands follow a consistent pattern of parsing flags, calling the
// server API via the client package, and formatting output via the
// output package.
package command
