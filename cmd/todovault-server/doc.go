// Package main provides the entry point for todovault-server.
//
// The server hosts the TodoVault web application:
//
//   - HTTP/HTTPS JSON API for login and todo management
//   - Embedded single-page frontend
//   - Prometheus metrics endpoint
//   - Live log-level reload on config file changes
//
// Usage:
//
//	todovault-server [flags]
//	todovault-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure
// components, and starts the HTTP listener.
package main
