// Package httpserver provides the HTTP/HTTPS server for TodoVault.
//
// It wires the API handlers, the static frontend, and the middleware
// chain (recovery, CORS, request IDs, rate limiting, metrics, audit
// logging, authentication) on top of net/http.
package httpserver
