package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "greatcircle"

// prometheus metrics
type metrics struct {
	distanceRequests *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	httpResponses    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		distanceRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "distance_requests_total",
			Help:      "The total number of distance requests by outcome",
		}, []string{"outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "The duration of HTTP requests",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"method", "route"}),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_responses_total",
			Help:      "The total number of HTTP responses by status code",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.distanceRequests, m.httpDuration, m.httpResponses)
	return m
}
