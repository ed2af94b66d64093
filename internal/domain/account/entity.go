package domain_account

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultDebitWait  = 100 * time.Millisecond
	DefaultCreditWait = 10 * time.Second
)

// Account is a balance guarded by its own lock. All reads and writes of the
// balance happen while the guard is held.
type Account struct {
	id string

	guard   *guard
	balance decimal.Decimal

	debitWait  time.Duration
	creditWait time.Duration
}

type NewParams struct {
	AccountID string
	Balance   decimal.Decimal

	// Zero values fall back to DefaultDebitWait and DefaultCreditWait.
	DebitWait  time.Duration
	CreditWait time.Duration
}

func New(p NewParams) (*Account, error) {
	id := strings.TrimSpace(p.AccountID)
	if id == "" {
		return nil, ErrInvalidAccountID
	}

	if p.Balance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	if p.DebitWait <= 0 {
		p.DebitWait = DefaultDebitWait
	}

	if p.CreditWait <= 0 {
		p.CreditWait = DefaultCreditWait
	}

	return &Account{
		id:         id,
		guard:      newGuard(),
		balance:    p.Balance,
		debitWait:  p.DebitWait,
		creditWait: p.CreditWait,
	}, nil
}

// Lock acquires the account guard, waiting at most wait. A non-positive wait
// blocks until ctx is done. The returned Held must be unlocked by the caller.
func (a *Account) Lock(ctx context.Context, wait time.Duration) (*Held, error) {
	if err := a.guard.acquire(ctx, wait); err != nil {
		return nil, err
	}

	return &Held{account: a}, nil
}

// Debit subtracts amount if the balance covers it. On any failure the
// balance is left untouched.
func (a *Account) Debit(ctx context.Context, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	held, err := a.Lock(ctx, a.debitWait)
	if err != nil {
		return err
	}
	defer held.Unlock()

	return held.Debit(amount)
}

// Credit adds amount unconditionally once the guard is acquired.
func (a *Account) Credit(ctx context.Context, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	held, err := a.Lock(ctx, a.creditWait)
	if err != nil {
		return err
	}
	defer held.Unlock()

	return held.Credit(amount)
}

// Balance reads the balance under the guard, so it never sees a transfer
// halfway applied.
func (a *Account) Balance(ctx context.Context) (decimal.Decimal, error) {
	held, err := a.Lock(ctx, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer held.Unlock()

	return held.Balance()
}

func (a *Account) ID() string { return a.id }

func (a *Account) DebitWait() time.Duration { return a.debitWait }

func (a *Account) CreditWait() time.Duration { return a.creditWait }
