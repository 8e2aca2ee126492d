// Venuelens - Booking Transaction Analytics Dashboards
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/venuelens

package warehouse

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/venuelens/internal/logging"
	"github.com/tomtom215/venuelens/internal/metrics"
)

// Breaker tuning. The warehouse query is the single expensive call in the
// service, so the circuit opens on consecutive failures rather than a ratio.
const (
	breakerMaxFailures    = 3
	breakerHalfOpenProbes = 1
	breakerInterval       = 5 * time.Minute
	breakerOpenTimeout    = 30 * time.Second
)

// breaker wraps warehouse queries with circuit breaker protection.
//
// The circuit breaker uses real time (via sony/gobreaker) for its interval
// and timeout calculations. Tests exercise tripping via consecutive failures
// and do not wait for recovery.
type breaker struct {
	cb   *gobreaker.CircuitBreaker[[]RawRecord]
	name string
}

func newBreaker(name string) *breaker {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[[]RawRecord](gobreaker.Settings{
		Name:        name,
		MaxRequests: breakerHalfOpenProbes,
		Interval:    breakerInterval,
		Timeout:     breakerOpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures < breakerMaxFailures {
				return false
			}
			logging.Warn().
				Str("breaker", name).
				Uint32("consecutive_failures", counts.ConsecutiveFailures).
				Msg("[CIRCUIT BREAKER] Opening circuit")
			return true
		},

		// A caller going away is not a warehouse failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &breaker{cb: cb, name: name}
}

// execute runs fn through the breaker and records the outcome.
func (b *breaker) execute(fn func() ([]RawRecord, error)) ([]RawRecord, error) {
	rows, err := b.cb.Execute(fn)
	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		logging.Warn().Err(err).Str("breaker", b.name).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	}
	return rows, err
}

// stateToFloat converts circuit breaker state to numeric value for metrics
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

// stateToString converts circuit breaker state to string for logging
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
