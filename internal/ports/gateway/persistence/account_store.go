package port_persistence

import (
	"context"
	"errors"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

var (
	ErrNotFound      = errors.New("persistence: not found")
	ErrAlreadyExists = errors.New("persistence: already exists")
)

// AccountStore hands out the single shared instance of each account. Callers
// mutate balances through the returned pointer, never through copies.
type AccountStore interface {
	Lookup(ctx context.Context, accountID string) (*domain_account.Account, error)
	Create(ctx context.Context, account *domain_account.Account) error
}
