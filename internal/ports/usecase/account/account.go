package port_account

import (
	"context"

	"github.com/shopspring/decimal"
)

type OpenAccountInput struct {
	// AccountID may be empty, in which case one is generated.
	AccountID string
	Balance   decimal.Decimal
}

type AccountOutput struct {
	AccountID string
	Balance   decimal.Decimal
}

type OpenAccountUseCase interface {
	Execute(ctx context.Context, input OpenAccountInput) (AccountOutput, error)
}

type GetAccountUseCase interface {
	Execute(ctx context.Context, accountID string) (AccountOutput, error)
}

type MovementInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// DepositUseCase credits a single account outside of any transfer.
type DepositUseCase interface {
	Execute(ctx context.Context, input MovementInput) (AccountOutput, error)
}

// WithdrawUseCase debits a single account outside of any transfer.
type WithdrawUseCase interface {
	Execute(ctx context.Context, input MovementInput) (AccountOutput, error)
}
