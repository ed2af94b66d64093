package impl_account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
)

type GetAccountUsecaseImpl struct {
	accounts port_persistence.AccountStore
}

func NewGetAccountUsecaseImpl(accounts port_persistence.AccountStore) *GetAccountUsecaseImpl {
	return &GetAccountUsecaseImpl{accounts: accounts}
}

var _ port_account.GetAccountUseCase = (*GetAccountUsecaseImpl)(nil)

// Execute reads the balance under the account guard, so a transfer in
// flight is never observed half applied.
func (u *GetAccountUsecaseImpl) Execute(ctx context.Context, accountID string) (port_account.AccountOutput, error) {
	acc, err := lookup(ctx, u.accounts, accountID)
	if err != nil {
		return port_account.AccountOutput{}, err
	}

	bal, err := acc.Balance(ctx)
	if err != nil {
		return port_account.AccountOutput{}, mapAccountError(acc.ID(), err)
	}

	return port_account.AccountOutput{AccountID: acc.ID(), Balance: bal}, nil
}

func lookup(ctx context.Context, accounts port_persistence.AccountStore, accountID string) (*domain_account.Account, error) {
	accountID = strings.TrimSpace(accountID)

	acc, err := accounts.Lookup(ctx, accountID)
	if err != nil {
		if errors.Is(err, port_persistence.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrAccountNotFound, accountID)
		}
		return nil, err
	}

	return acc, nil
}

func mapAccountError(accountID string, err error) error {
	switch {
	case errors.Is(err, domain_account.ErrInvalidAmount):
		return ErrInvalidAmount
	case errors.Is(err, domain_account.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, domain_account.ErrLockInterrupted):
		return fmt.Errorf("%w: account %s", ErrInterrupted, accountID)
	case errors.Is(err, domain_account.ErrLockTimeout):
		return fmt.Errorf("%w: account %s", ErrLockTimeout, accountID)
	default:
		return err
	}
}
