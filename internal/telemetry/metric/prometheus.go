// Package metric provides Prometheus metrics for TodoVault.
//
// It exposes metrics in Prometheus format for monitoring request
// rates, latencies, logins, and todo counts.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Auth metrics
	LoginsTotal *prometheus.CounterVec

	// Todo metrics
	TodosCreated prometheus.Counter
	TodosDeleted prometheus.Counter
}

// NewRegistry creates a new metrics registry with all application
// metrics registered, plus the standard Go runtime collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,

		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todovault",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "todovault",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "todovault",
			Name:      "logins_total",
			Help:      "Login attempts by result (success, failure).",
		}, []string{"result"}),

		TodosCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "todovault",
			Name:      "todos_created_total",
			Help:      "Total todos created.",
		}),

		TodosDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "todovault",
			Name:      "todos_deleted_total",
			Help:      "Total todos deleted.",
		}),
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.LoginsTotal,
		r.TodosCreated,
		r.TodosDeleted,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// MustRegister registers additional collectors, such as the store
// statistics collector.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
