package store

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/metrics"
	"github.com/tasteit/tasteit/backend/internal/model"
)

// BreakerConfig holds configuration for the store circuit breaker
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultBreakerConfig returns the breaker settings used when none are configured
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      5,
		Interval:         30 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// BreakerStore fails fast while the wrapped store keeps failing. It never retries.
type BreakerStore struct {
	next Store
	cb   *gobreaker.CircuitBreaker[[]model.MatchResult]
}

// NewBreakerStore wraps next with a circuit breaker
func NewBreakerStore(next Store, cfg BreakerConfig, logger *zap.Logger) *BreakerStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	cb := gobreaker.NewCircuitBreaker[[]model.MatchResult](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("store circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.StoreBreakerState.WithLabelValues(name).Set(float64(to))
		},
		IsSuccessful: func(err error) bool {
			// only backend failures count; callers giving up and malformed queries do not
			return err == nil || errors.Is(err, context.Canceled) || !errors.Is(err, ErrUnavailable)
		},
	})
	return &BreakerStore{next: next, cb: cb}
}

// Fetch implements Store
func (b *BreakerStore) Fetch(ctx context.Context, q Query) ([]model.MatchResult, error) {
	results, err := b.cb.Execute(func() ([]model.MatchResult, error) {
		return b.next.Fetch(ctx, q)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &Error{Op: "fetch", Err: err}
	}
	return results, err
}

// Ping implements Store
func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.next.Ping(ctx)
}

// State returns the current breaker state
func (b *BreakerStore) State() gobreaker.State {
	return b.cb.State()
}
