// Package memory provides in-memory storage for TodoVault.
//
// It holds the user credential table and the per-owner todo list
// behind coarse locks, returning clones so callers can never mutate
// stored state.
package memory
