package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the Prometheus instruments for the HTTP surface.
type metrics struct {
	requests  *prometheus.CounterVec
	ruleFired *prometheus.CounterVec
	duration  prometheus.Histogram
}

func newMetrics(reg *prometheus.Registry) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redline_requests_total",
				Help: "Total process requests by outcome",
			},
			[]string{"outcome"},
		),
		ruleFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redline_rule_fired_total",
				Help: "Total change records emitted, by rule",
			},
			[]string{"rule"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "redline_request_duration_seconds",
				Help:    "Duration of process requests",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.requests, m.ruleFired, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}
