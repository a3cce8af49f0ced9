// Package client implements the HTTP client used by todovault-cli to
// talk to a todovault-server instance. It wraps the JSON API endpoints
// with typed methods and surfaces server error bodies as APIError
// values.
package client
