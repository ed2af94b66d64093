package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/persistence/memory"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAccount(t *testing.T, id string) *domain_account.Account {
	t.Helper()

	acc, err := domain_account.New(domain_account.NewParams{AccountID: id, Balance: decimal.NewFromInt(10)})
	require.NoError(t, err)

	return acc
}

func TestAccountStore_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	acc := mustAccount(t, "12")

	require.NoError(t, store.Create(ctx, acc))

	got, err := store.Lookup(ctx, "12")
	require.NoError(t, err)
	assert.Same(t, acc, got, "lookup must return the shared instance")

	_, err = store.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, port_persistence.ErrNotFound)
}

func TestAccountStore_MutationVisibleAcrossLookups(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	require.NoError(t, store.Create(ctx, mustAccount(t, "12")))

	first, _ := store.Lookup(ctx, "12")
	require.NoError(t, first.Credit(ctx, decimal.NewFromInt(5)))

	second, _ := store.Lookup(ctx, "12")
	balance, err := second.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(15)), "got %s", balance)
}

func TestAccountStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	require.NoError(t, store.Create(ctx, mustAccount(t, "12")))

	err := store.Create(ctx, mustAccount(t, "12"))
	assert.ErrorIs(t, err, port_persistence.ErrAlreadyExists)
	assert.Equal(t, 1, store.Len())
}

func TestAccountStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()
	require.NoError(t, store.Create(ctx, mustAccount(t, "12")))

	store.Clear()

	assert.Equal(t, 0, store.Len())
	_, err := store.Lookup(ctx, "12")
	assert.ErrorIs(t, err, port_persistence.ErrNotFound)
}

func TestAccountStore_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewAccountStore()

	const n = 50

	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Create(ctx, mustAccount(t, fmt.Sprintf("acc-%d", i))))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, store.Len())
}
