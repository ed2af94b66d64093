package port_notification

import (
	"context"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

// Sink delivers a best-effort message to the owner of an account. A returned
// error is only ever logged by callers.
type Sink interface {
	Notify(ctx context.Context, account *domain_account.Account, message string) error
}
