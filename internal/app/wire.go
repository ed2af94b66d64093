// Package app builds the dependency graph of the ledger service from a
// config.Config.
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"
	impl_messaging "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/messaging"
	impl_notification "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/notification"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/persistence/memory"
	impl_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/platform"
	impl_http "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/http"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	port_notification "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/notification"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Wire bundles the store, use cases and HTTP handler of one running service.
type Wire struct {
	Accounts *memory.AccountStore
	Sink     port_notification.Sink
	UseCases impl_http.UseCases
	Handler  http.Handler

	closers []func(context.Context) error
}

// NewWire connects to Redis when cfg.RedisAddr is set and fails if it is
// unreachable; otherwise notifications go to the log.
func NewWire(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Wire{Accounts: memory.NewAccountStore()}

	clock := impl_platform.SystemClock{}
	ids := impl_platform.UUIDGenerator{}

	if cfg.RedisAddr == "" {
		w.Sink = impl_notification.NewLogSink(logger)
	} else {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		publisher := impl_messaging.NewRedisPublisher(client)
		if err := publisher.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, err
		}

		breaker := impl_messaging.NewBreakerPublisher(publisher, logger, impl_messaging.BreakerConfig{
			ConsecutiveFailures: cfg.BreakerFailures,
			OpenTimeout:         cfg.BreakerOpenTimeout,
		})

		sink := impl_notification.NewAsyncSink(breaker, clock, logger, impl_notification.AsyncSinkConfig{
			Channel:        cfg.RedisChannel,
			MaxInFlight:    cfg.NotifyMaxInFlight,
			PublishTimeout: cfg.NotifyPublishTimeout,
		})

		w.Sink = sink
		w.closers = append(w.closers,
			sink.Close,
			func(context.Context) error { return client.Close() },
		)
	}

	w.UseCases = impl_http.UseCases{
		OpenAccount: impl_account.NewOpenAccountUsecaseImpl(w.Accounts, ids, logger, impl_account.Waits{
			DebitWait:  cfg.DebitWait,
			CreditWait: cfg.CreditWait,
		}),
		GetAccount: impl_account.NewGetAccountUsecaseImpl(w.Accounts),
		Deposit:    impl_account.NewDepositUsecaseImpl(w.Accounts, logger),
		Withdraw:   impl_account.NewWithdrawUsecaseImpl(w.Accounts, logger),
		CreateTransfer: impl_transfer.NewCreateTransferUsecaseImpl(w.Accounts, w.Sink, clock, ids, logger, impl_transfer.Config{
			SourceLockWait:      cfg.SourceLockWait,
			DestinationLockWait: cfg.DestinationLockWait,
		}),
	}

	w.Handler = impl_http.NewServer(w.UseCases, logger).Router()

	return w, nil
}

// Close releases resources in reverse order of dependency: the sink drains
// before the Redis client it publishes through is closed.
func (w *Wire) Close(ctx context.Context) error {
	var errs []error
	for _, c := range w.closers {
		if err := c(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
