package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Booking outcomes recorded by BookingsTotal.
const (
	OutcomeSuccess     = "success"
	OutcomeConflict    = "conflict"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
	OutcomeUnavailable = "unavailable"
	OutcomeWrongMovie  = "wrong_movie"
)

type Metrics struct {
	// HTTP requests by method, route pattern and status code
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP request latency by method and route pattern
	HTTPRequestDuration *prometheus.HistogramVec

	// Booking attempts by outcome
	BookingsTotal *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry registers the collectors on reg and serves them from it.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		BookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookings_total",
				Help: "Total number of seat booking attempts",
			},
			[]string{"outcome"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsTotal,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
