package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CreateTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CorrelationID string
}

type CreateTransferOutput struct {
	TransferID    string
	Status        string
	CompletedAt   time.Time
	CorrelationID string
}

type CreateTransferUseCase interface {
	Execute(ctx context.Context, input CreateTransferInput) (CreateTransferOutput, error)
}
