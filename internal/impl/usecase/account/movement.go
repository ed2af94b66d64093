package impl_account

import (
	"context"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositUsecaseImpl struct {
	accounts port_persistence.AccountStore
	logger   *zap.Logger
}

func NewDepositUsecaseImpl(accounts port_persistence.AccountStore, logger *zap.Logger) *DepositUsecaseImpl {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DepositUsecaseImpl{accounts: accounts, logger: logger}
}

var _ port_account.DepositUseCase = (*DepositUsecaseImpl)(nil)

func (u *DepositUsecaseImpl) Execute(ctx context.Context, in port_account.MovementInput) (port_account.AccountOutput, error) {
	return move(ctx, u.accounts, u.logger, credit, in)
}

type WithdrawUsecaseImpl struct {
	accounts port_persistence.AccountStore
	logger   *zap.Logger
}

func NewWithdrawUsecaseImpl(accounts port_persistence.AccountStore, logger *zap.Logger) *WithdrawUsecaseImpl {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &WithdrawUsecaseImpl{accounts: accounts, logger: logger}
}

var _ port_account.WithdrawUseCase = (*WithdrawUsecaseImpl)(nil)

func (u *WithdrawUsecaseImpl) Execute(ctx context.Context, in port_account.MovementInput) (port_account.AccountOutput, error) {
	return move(ctx, u.accounts, u.logger, debit, in)
}

type direction string

const (
	credit direction = "deposit"
	debit  direction = "withdraw"
)

func (d direction) wait(acc *domain_account.Account) time.Duration {
	if d == debit {
		return acc.DebitWait()
	}
	return acc.CreditWait()
}

func (d direction) apply(held *domain_account.Held, amount decimal.Decimal) error {
	if d == debit {
		return held.Debit(amount)
	}
	return held.Credit(amount)
}

// move applies d under a single guard window using the account's own wait
// budget for that direction, so the reported balance is the one d produced.
func move(
	ctx context.Context,
	accounts port_persistence.AccountStore,
	log *zap.Logger,
	d direction,
	in port_account.MovementInput,
) (port_account.AccountOutput, error) {
	if !in.Amount.IsPositive() {
		return port_account.AccountOutput{}, ErrInvalidAmount
	}

	acc, err := lookup(ctx, accounts, in.AccountID)
	if err != nil {
		return port_account.AccountOutput{}, err
	}

	held, err := acc.Lock(ctx, d.wait(acc))
	if err != nil {
		return port_account.AccountOutput{}, mapAccountError(acc.ID(), err)
	}
	defer held.Unlock()

	if err := d.apply(held, in.Amount); err != nil {
		return port_account.AccountOutput{}, mapAccountError(acc.ID(), err)
	}

	bal, err := held.Balance()
	if err != nil {
		return port_account.AccountOutput{}, mapAccountError(acc.ID(), err)
	}

	log.Info("balance moved",
		zap.String("movement", string(d)),
		zap.String("account_id", acc.ID()),
		zap.Stringer("amount", in.Amount),
		zap.Stringer("balance", bal),
	)

	return port_account.AccountOutput{AccountID: acc.ID(), Balance: bal}, nil
}
