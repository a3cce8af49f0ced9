// Package handler provides HTTP request handlers for TodoVault.
//
// This package implements the JSON API endpoints for login, the
// owner-scoped todo operations, and health reporting. Routing is done
// with net/http method patterns; authentication is applied by the
// middleware in the parent httpserver package.
package handler
