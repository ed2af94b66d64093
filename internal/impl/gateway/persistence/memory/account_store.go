package memory

import (
	"context"
	"fmt"
	"sync"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
)

// AccountStore keeps accounts in memory. The map lock only protects the
// index; balances are guarded by each account.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain_account.Account
}

var _ port_persistence.AccountStore = (*AccountStore)(nil)

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain_account.Account)}
}

func (s *AccountStore) Lookup(_ context.Context, accountID string) (*domain_account.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[accountID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	return acc, nil
}

func (s *AccountStore) Create(_ context.Context, account *domain_account.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID()]; exists {
		return fmt.Errorf("%w: account %q", port_persistence.ErrAlreadyExists, account.ID())
	}

	s.accounts[account.ID()] = account

	return nil
}

// Clear drops every account.
func (s *AccountStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = make(map[string]*domain_account.Account)
}

func (s *AccountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts)
}
