// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

// Package metrics provides Prometheus instrumentation for the resolution
// pipeline, the external map-storage dependency, and the HTTP surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Resolution pipeline metrics

	// ResolutionsTotal counts map resolutions by terminal outcome:
	// "descriptor", "fallback", "redirect", "invalid".
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_resolutions_total",
			Help: "Total number of map resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// MaterializationsTotal counts coordinator decisions:
	// "unconfigured", "created", "exists", "create_failed", "probe_failed".
	MaterializationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_materializations_total",
			Help: "Total number of materialization decisions by state",
		},
		[]string{"state"},
	)

	// CacheRepairsTotal counts cache-drift repairs: stored artifact
	// pointers rewritten because current configuration computed a
	// different canonical value.
	CacheRepairsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wayfarer_cache_repairs_total",
			Help: "Total number of stale artifact pointers repaired",
		},
	)

	// Map storage client metrics

	// StorageRequestsTotal counts calls to the external map-storage
	// service by operation ("exists", "create") and result
	// ("success", "failure").
	StorageRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_storage_requests_total",
			Help: "Total number of map-storage requests",
		},
		[]string{"operation", "result"},
	)

	// StorageRequestDuration observes map-storage call latency.
	StorageRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_storage_request_duration_seconds",
			Help:    "Duration of map-storage requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Circuit breaker metrics

	// CircuitBreakerState tracks breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wayfarer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// CircuitBreakerRequests counts requests through the breaker by
	// result ("success", "failure", "rejected").
	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"name", "result"},
	)

	// CircuitBreakerTransitions counts state transitions.
	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Database metrics

	// DBQueryDuration observes backing-store query latency.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_db_query_duration_seconds",
			Help:    "Duration of backing-store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// DBQueryErrors counts backing-store query errors.
	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_db_query_errors_total",
			Help: "Total number of backing-store query errors",
		},
		[]string{"operation"},
	)

	// HTTP metrics

	// APIRequestsTotal counts API requests by method, path pattern, and
	// status code.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wayfarer_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// APIRequestDuration observes API request latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wayfarer_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)
)
