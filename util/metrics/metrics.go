// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RentalsOpenedTotal counts successfully opened rentals.
	RentalsOpenedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_opened_total",
		Help: "Total number of rentals opened",
	})

	// RentalsReturnedTotal counts successful returns.
	RentalsReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rentals_returned_total",
		Help: "Total number of rentals returned",
	})

	// LedgerErrorsTotal counts ledger operations that failed, by error code.
	LedgerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_ledger_errors_total",
		Help: "Total number of failed rental ledger operations",
	}, []string{"op", "code"})

	// HTTPRequestDuration tracks request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "path", "status"})
)
