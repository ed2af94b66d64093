package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	port_notification "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/notification"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"

	"go.uber.org/zap"
)

const (
	DefaultSourceLockWait      = 10 * time.Second
	DefaultDestinationLockWait = 100 * time.Millisecond
)

type Config struct {
	SourceLockWait      time.Duration
	DestinationLockWait time.Duration
}

type CreateTransferUsecaseImpl struct {
	accounts port_persistence.AccountStore
	sink     port_notification.Sink
	clock    port_platform.Clock
	ids      port_platform.IDGenerator
	logger   *zap.Logger
	cfg      Config
}

func NewCreateTransferUsecaseImpl(
	accounts port_persistence.AccountStore,
	sink port_notification.Sink,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	logger *zap.Logger,
	cfg Config,
) *CreateTransferUsecaseImpl {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.SourceLockWait <= 0 {
		cfg.SourceLockWait = DefaultSourceLockWait
	}

	if cfg.DestinationLockWait <= 0 {
		cfg.DestinationLockWait = DefaultDestinationLockWait
	}

	return &CreateTransferUsecaseImpl{
		accounts: accounts,
		sink:     sink,
		clock:    clock,
		ids:      ids,
		logger:   logger,
		cfg:      cfg,
	}
}

var _ port_transfer.CreateTransferUseCase = (*CreateTransferUsecaseImpl)(nil)

func (u *CreateTransferUsecaseImpl) Execute(ctx context.Context, in port_transfer.CreateTransferInput) (port_transfer.CreateTransferOutput, error) {
	tr, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:    u.ids.NewUUID(),
		FromAccountID: in.FromAccountID,
		ToAccountID:   in.ToAccountID,
		Amount:        in.Amount,
		CorrelationID: in.CorrelationID,
		Now:           u.clock.Now(),
	})
	if err != nil {
		return port_transfer.CreateTransferOutput{}, err
	}

	log := u.logger.With(
		zap.String("transfer_id", tr.ID().String()),
		zap.String("correlation_id", tr.CorrelationID()),
		zap.String("from_account_id", tr.FromAccountID()),
		zap.String("to_account_id", tr.ToAccountID()),
		zap.Stringer("amount", tr.Amount()),
	)

	from, to, runErr := u.run(ctx, tr)

	u.dispatch(ctx, log, tr, from, to)

	if runErr != nil {
		log.Info("transfer rejected",
			zap.String("reason", string(tr.FailureReason())),
			zap.Error(runErr),
		)
		return toOutput(tr), runErr
	}

	log.Info("transfer completed")

	return toOutput(tr), nil
}

// run drives the transfer through its states. It returns whichever accounts
// were resolved so completed transfers can be notified.
func (u *CreateTransferUsecaseImpl) run(ctx context.Context, tr *domain_transfer.Transfer) (from, to *domain_account.Account, err error) {
	from, to, err = u.lookup(ctx, tr.FromAccountID(), tr.ToAccountID())
	if err != nil {
		return nil, nil, u.reject(tr, domain_transfer.ReasonAccountNotFound, err)
	}

	if err := tr.Validate(u.clock.Now()); err != nil {
		switch {
		case errors.Is(err, domain_transfer.ErrInvalidAmount):
			return from, to, u.reject(tr, domain_transfer.ReasonInvalidAmount, fmt.Errorf("%w: %s", ErrInvalidAmount, tr.Amount()))
		case errors.Is(err, domain_transfer.ErrSameAccount):
			return from, to, u.reject(tr, domain_transfer.ReasonSameAccount, ErrSameAccount)
		default:
			return from, to, err
		}
	}

	if err := tr.BeginLocking(u.clock.Now()); err != nil {
		return from, to, err
	}

	pair, err := lockPair(ctx, from, to, u.cfg.SourceLockWait, u.cfg.DestinationLockWait)
	if err != nil {
		reason := domain_transfer.ReasonLockTimeout
		if errors.Is(err, ErrInterrupted) {
			reason = domain_transfer.ReasonInterrupted
		}
		return from, to, u.reject(tr, reason, err)
	}
	defer pair.release()

	if err := pair.source.Debit(tr.Amount()); err != nil {
		if errors.Is(err, domain_account.ErrInsufficientFunds) {
			return from, to, u.reject(tr, domain_transfer.ReasonInsufficientFunds, ErrInsufficientFunds)
		}
		return from, to, fmt.Errorf("debit source: %w", err)
	}

	if err := tr.MarkDebited(u.clock.Now()); err != nil {
		_ = pair.source.Credit(tr.Amount())
		return from, to, err
	}

	if err := pair.destination.Credit(tr.Amount()); err != nil {
		// Only reachable if a guard was lost; put the money back before
		// the source guard is released.
		_ = pair.source.Credit(tr.Amount())
		return from, to, fmt.Errorf("credit destination: %w", err)
	}

	if err := tr.MarkCredited(u.clock.Now()); err != nil {
		return from, to, err
	}

	pair.release()

	return from, to, tr.Complete(u.clock.Now())
}

func (u *CreateTransferUsecaseImpl) lookup(ctx context.Context, fromID, toID string) (*domain_account.Account, *domain_account.Account, error) {
	from, err := u.accounts.Lookup(ctx, fromID)
	if err != nil {
		return nil, nil, lookupError(fromID, err)
	}

	to, err := u.accounts.Lookup(ctx, toID)
	if err != nil {
		return nil, nil, lookupError(toID, err)
	}

	return from, to, nil
}

func lookupError(accountID string, err error) error {
	if errors.Is(err, port_persistence.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrAccountNotFound, accountID)
	}

	return fmt.Errorf("%w: %q: %w", ErrAccountNotFound, accountID, err)
}

func (u *CreateTransferUsecaseImpl) reject(tr *domain_transfer.Transfer, reason domain_transfer.RejectReason, cause error) error {
	if err := tr.Reject(reason, u.clock.Now()); err != nil {
		return errors.Join(cause, err)
	}

	return cause
}

// dispatch drains the transfer's events. Completed transfers notify both
// parties; notification errors are logged and never reach the caller.
func (u *CreateTransferUsecaseImpl) dispatch(ctx context.Context, log *zap.Logger, tr *domain_transfer.Transfer, from, to *domain_account.Account) {
	nctx := context.WithoutCancel(ctx)

	for _, ev := range tr.PullEvents() {
		log.Debug("transfer event", zap.String("event", ev.EventName()), zap.Time("occurred_at", ev.OccurredAt()))

		completed, ok := ev.(domain_transfer.TransferCompleted)
		if !ok || u.sink == nil {
			continue
		}

		u.notify(nctx, log, from, fmt.Sprintf("Amount %s has been transferred to account id %s", completed.Amount, completed.ToAccountID))
		u.notify(nctx, log, to, fmt.Sprintf("Amount %s has been transferred from account id %s", completed.Amount, completed.FromAccountID))
	}
}

func (u *CreateTransferUsecaseImpl) notify(ctx context.Context, log *zap.Logger, account *domain_account.Account, message string) {
	if err := u.sink.Notify(ctx, account, message); err != nil {
		log.Warn("transfer notification failed",
			zap.String("account_id", account.ID()),
			zap.Error(err),
		)
	}
}

func toOutput(tr *domain_transfer.Transfer) port_transfer.CreateTransferOutput {
	out := port_transfer.CreateTransferOutput{
		TransferID:    tr.ID().String(),
		Status:        string(tr.Status()),
		CorrelationID: tr.CorrelationID(),
	}

	if tr.Status() == domain_transfer.StatusDone {
		out.CompletedAt = tr.UpdatedAt()
	}

	return out
}
