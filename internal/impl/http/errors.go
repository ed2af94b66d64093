package impl_http

import (
	"errors"
	"net/http"

	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
)

var ErrMalformedBody = errors.New("malformed request body")

func transferStatus(err error) int {
	switch {
	case errors.Is(err, impl_transfer.ErrAccountNotFound),
		errors.Is(err, impl_transfer.ErrInvalidAmount),
		errors.Is(err, impl_transfer.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, impl_transfer.ErrLockTimeout),
		errors.Is(err, impl_transfer.ErrInterrupted):
		return http.StatusServiceUnavailable
	default:
		// insufficient funds included
		return http.StatusInternalServerError
	}
}

func accountStatus(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBody),
		errors.Is(err, impl_account.ErrInvalidInput),
		errors.Is(err, impl_account.ErrInvalidBalance),
		errors.Is(err, impl_account.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, impl_account.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, impl_account.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, impl_account.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, impl_account.ErrLockTimeout),
		errors.Is(err, impl_account.ErrInterrupted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
