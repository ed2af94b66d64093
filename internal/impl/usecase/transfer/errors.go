package impl_transfer

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidAmount     = errors.New("amount should be greater than 0")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrLockTimeout       = errors.New("account is busy, could not acquire lock in time")
	ErrInterrupted       = errors.New("transfer interrupted while waiting for account lock")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
