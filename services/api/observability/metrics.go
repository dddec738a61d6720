// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the HBNB API.
//
// Metrics are exposed via the /metrics endpoint. All metric operations
// are thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "hbnb"

// Metrics holds the Prometheus collectors for the API server.
// Initialize once at startup via NewMetrics().
type Metrics struct {
	// RequestsTotal counts HTTP requests.
	// Labels: method, path (route template), status
	RequestsTotal *prometheus.CounterVec

	// RequestDurationSeconds measures request latency.
	// Labels: method, path
	RequestDurationSeconds *prometheus.HistogramVec

	// StoreRecords tracks the number of stored records per entity kind.
	// Labels: kind
	StoreRecords *prometheus.GaugeVec
}

// NewMetrics creates and registers the collectors on the default
// registry. Call once at startup.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith registers the collectors on the given registerer.
// Tests use a private registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by method, route and status.",
			},
			[]string{"method", "path", "status"},
		),
		RequestDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		StoreRecords: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "store_records",
				Help:      "Number of records currently stored per entity kind.",
			},
			[]string{"kind"},
		),
	}
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDurationSeconds.WithLabelValues(method, path).Observe(seconds)
}

// SetStoreCount updates the stored-record gauge for one kind.
func (m *Metrics) SetStoreCount(kind string, n int) {
	if m == nil {
		return
	}
	m.StoreRecords.WithLabelValues(kind).Set(float64(n))
}
