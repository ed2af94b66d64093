package domain_account

import "github.com/shopspring/decimal"

// Held is an acquired account guard. It is the only way to mutate a balance
// while the caller already owns the lock, and is not safe for use by more
// than one goroutine.
type Held struct {
	account  *Account
	released bool
}

func (h *Held) Account() *Account { return h.account }

// Debit subtracts amount from the held account, or returns
// ErrInsufficientFunds with the balance unchanged.
func (h *Held) Debit(amount decimal.Decimal) error {
	if h.released {
		return ErrNotHeld
	}

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if h.account.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	h.account.balance = h.account.balance.Sub(amount)

	return nil
}

func (h *Held) Credit(amount decimal.Decimal) error {
	if h.released {
		return ErrNotHeld
	}

	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	h.account.balance = h.account.balance.Add(amount)

	return nil
}

func (h *Held) Balance() (decimal.Decimal, error) {
	if h.released {
		return decimal.Decimal{}, ErrNotHeld
	}

	return h.account.balance, nil
}

// Unlock releases the guard. Calling it more than once is a no-op.
func (h *Held) Unlock() {
	if h.released {
		return
	}

	h.released = true
	h.account.guard.release()
}
