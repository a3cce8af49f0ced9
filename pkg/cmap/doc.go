// Package cmap provides a concurrent-safe sharded map with string
// keys.
//
// Sharding spreads lock contention across independent buckets, which
// beats a single mutex-guarded map when many goroutines touch
// disjoint keys, as with per-client rate limiter lookups.
package cmap
