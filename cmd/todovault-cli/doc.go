// Package main provides the entry point for todovault-cli.
//
// The CLI tool provides command-line access to a todovault-server for:
//
//   - Authentication (login)
//   - Todo management (list, add, done, edit, rm)
//   - Server health checks (status)
//
// Usage:
//
//	todovault-cli [command] [flags]
//	todovault-cli login admin
//	TODOVAULT_TOKEN=<token> todovault-cli list --output json
package main
