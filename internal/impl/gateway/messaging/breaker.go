package impl_messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	messaging "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var ErrPublisherUnavailable = errors.New("messaging: publisher temporarily unavailable")

type BreakerConfig struct {
	Name string
	// Consecutive failures that open the breaker.
	ConsecutiveFailures uint32
	// How long the breaker stays open before probing again.
	OpenTimeout time.Duration
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:                "notification-publisher",
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

// BreakerPublisher stops calling a failing publisher for a while instead of
// tying up every delivery on a dead connection.
type BreakerPublisher struct {
	next messaging.Publisher
	cb   *gobreaker.CircuitBreaker
}

func NewBreakerPublisher(next messaging.Publisher, logger *zap.Logger, cfg BreakerConfig) *BreakerPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}

	def := DefaultBreakerConfig()
	if cfg.Name == "" {
		cfg.Name = def.Name
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = def.ConsecutiveFailures
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}

	threshold := cfg.ConsecutiveFailures

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerPublisher{next: next, cb: cb}
}

var _ messaging.Publisher = (*BreakerPublisher)(nil)

func (p *BreakerPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		return nil, p.next.Publish(ctx, channel, payload)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrPublisherUnavailable, err)
	}

	return err
}

func (p *BreakerPublisher) State() gobreaker.State { return p.cb.State() }
