package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "breadcrumbs"

// metrics holds the counters the server exports on /metrics. Each server
// registers on its own registry so several can live in one process.
type metrics struct {
	registry     *prometheus.Registry
	computations prometheus.Counter
	memoHits     prometheus.Counter
	requests     *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &metrics{
		registry: reg,
		computations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "computations_total",
			Help:      "Trails served, memoized or not.",
		}),
		memoHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "memo_hits_total",
			Help:      "Trails served from the memo without recomputing.",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by status code.",
		}, []string{"code"}),
	}
}
