package impl_notification

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	messaging "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"
	port_notification "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/notification"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultChannel        = "ledger.notifications"
	DefaultMaxInFlight    = 64
	DefaultPublishTimeout = 2 * time.Second
)

var (
	ErrSinkClosed    = errors.New("notification: sink is closed")
	ErrSinkSaturated = errors.New("notification: too many deliveries in flight")
)

// Envelope is the payload published for each notification.
type Envelope struct {
	AccountID string    `json:"accountId"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

type AsyncSinkConfig struct {
	Channel        string
	MaxInFlight    int64
	PublishTimeout time.Duration
}

// AsyncSink publishes notifications from background goroutines. Notify only
// enqueues; delivery failures are logged.
type AsyncSink struct {
	publisher messaging.Publisher
	clock     port_platform.Clock
	logger    *zap.Logger
	cfg       AsyncSinkConfig

	inflight *semaphore.Weighted

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewAsyncSink(publisher messaging.Publisher, clock port_platform.Clock, logger *zap.Logger, cfg AsyncSinkConfig) *AsyncSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Channel == "" {
		cfg.Channel = DefaultChannel
	}

	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}

	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}

	return &AsyncSink{
		publisher: publisher,
		clock:     clock,
		logger:    logger.Named("notification"),
		cfg:       cfg,
		inflight:  semaphore.NewWeighted(cfg.MaxInFlight),
	}
}

var _ port_notification.Sink = (*AsyncSink)(nil)

func (s *AsyncSink) Notify(ctx context.Context, account *domain_account.Account, message string) error {
	payload, err := json.Marshal(Envelope{
		AccountID: account.ID(),
		Message:   message,
		SentAt:    s.clock.Now(),
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	if !s.inflight.TryAcquire(1) {
		return ErrSinkSaturated
	}

	s.wg.Add(1)
	go s.deliver(context.WithoutCancel(ctx), account.ID(), payload)

	return nil
}

func (s *AsyncSink) deliver(ctx context.Context, accountID string, payload []byte) {
	defer s.wg.Done()
	defer s.inflight.Release(1)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.PublishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, s.cfg.Channel, payload); err != nil {
		s.logger.Warn("notification delivery failed",
			zap.String("account_id", accountID),
			zap.String("channel", s.cfg.Channel),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("notification delivered",
		zap.String("account_id", accountID),
		zap.String("channel", s.cfg.Channel),
	)
}

// Close stops accepting notifications and waits for in-flight deliveries
// until ctx is done.
func (s *AsyncSink) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
