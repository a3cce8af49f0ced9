// Package metric provides Prometheus metrics for TodoVault.
package metric

import "github.com/prometheus/client_golang/prometheus"

// TodoCounter reports the current number of stored todos.
type TodoCounter interface {
	Count() int
}

// StoreCollector exposes live store statistics as a gauge, read at
// scrape time rather than updated on every mutation.
type StoreCollector struct {
	store TodoCounter
	desc  *prometheus.Desc
}

// NewStoreCollector creates a collector over the given store.
func NewStoreCollector(store TodoCounter) *StoreCollector {
	return &StoreCollector{
		store: store,
		desc: prometheus.NewDesc(
			"todovault_todos_stored",
			"Current number of stored todos across all owners.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.store.Count()))
}
