package domain_transfer

import "errors"

var (
	ErrInvalidTransferID = errors.New("transfer: invalid transfer_id")
	ErrSameAccount       = errors.New("transfer: from_account_id equals to_account_id")
	ErrInvalidAmount     = errors.New("transfer: amount must be > 0")

	ErrInvalidStateTransition = errors.New("transfer: invalid state transition")
	ErrAlreadyFinalized       = errors.New("transfer: transfer already finalized")
	ErrUnknownRejectReason    = errors.New("transfer: unknown reject reason")
)
