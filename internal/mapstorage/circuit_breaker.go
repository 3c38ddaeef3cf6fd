// Wayfarer - Room Directory and Map Artifact Materialization
// Copyright 2026 Wayfarer contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/wayfarer-app/wayfarer

package mapstorage

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/wayfarer-app/wayfarer/internal/logging"
	"github.com/wayfarer-app/wayfarer/internal/metrics"
)

// CircuitBreakerClient wraps a Client with a circuit breaker so a dead or
// degraded map-storage service is not probed on every single resolution.
// A rejected call surfaces as ErrStorageUnavailable, which the coordinator
// treats as a probe failure: skip creation, serve the raw source map.
//
// The breaker uses real time for its interval and timeout calculations.
// Unit tests should exercise the wrapped client directly, or drive the
// breaker through enough failures to trip it.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[bool]
	name   string
}

// NewCircuitBreakerClient wraps client with a circuit breaker.
//
// Configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window in closed state
//   - 30 second timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 5 requests
func NewCircuitBreakerClient(client Client) *CircuitBreakerClient {
	cbName := "map-storage"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening map-storage circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute runs fn through the breaker and records request metrics.
func (cbc *CircuitBreakerClient) execute(fn func() (bool, error)) (bool, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			return false, errors.Join(ErrStorageUnavailable, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		return false, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	return result, nil
}

// Exists probes the store through the circuit breaker.
func (cbc *CircuitBreakerClient) Exists(ctx context.Context, path string) (bool, error) {
	return cbc.execute(func() (bool, error) {
		return cbc.client.Exists(ctx, path)
	})
}

// Create materializes an artifact through the circuit breaker.
func (cbc *CircuitBreakerClient) Create(ctx context.Context, path, sourceURL string) error {
	_, err := cbc.execute(func() (bool, error) {
		return false, cbc.client.Create(ctx, path, sourceURL)
	})
	return err
}

// stateToFloat converts a breaker state to its metric value.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts a breaker state to its log label.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
