package domain_account

import "errors"

var (
	ErrInvalidAccountID  = errors.New("account: account_id is required")
	ErrInvalidAmount     = errors.New("account: amount must be > 0")
	ErrNegativeBalance   = errors.New("account: initial balance must be >= 0")
	ErrInsufficientFunds = errors.New("account: insufficient funds")

	ErrLockTimeout     = errors.New("account: timed out waiting for account lock")
	ErrLockInterrupted = errors.New("account: interrupted while waiting for account lock")
	ErrNotHeld         = errors.New("account: lock is not held")
)
