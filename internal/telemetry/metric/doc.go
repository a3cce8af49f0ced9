// Package metric provides Prometheus metrics for TodoVault.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//   - collector.go: Custom collector for store statistics
//
// Metrics include:
//
//   - Request latency histograms
//   - Login counters
//   - Todo lifecycle counters
//   - Stored todo count gauge
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
