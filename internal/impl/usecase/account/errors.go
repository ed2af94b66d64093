package impl_account

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidBalance    = errors.New("balance must be >= 0")
	ErrInvalidAmount     = errors.New("amount should be greater than 0")
	ErrDuplicateAccount  = errors.New("account id already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLockTimeout       = errors.New("account is busy, could not acquire lock in time")
	ErrInterrupted       = errors.New("interrupted while waiting for account lock")
)
