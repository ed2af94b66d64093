package impl_account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"

	"go.uber.org/zap"
)

// Waits applied to every account opened by the use case. Zero values fall
// back to the domain defaults.
type Waits struct {
	DebitWait  time.Duration
	CreditWait time.Duration
}

type OpenAccountUsecaseImpl struct {
	accounts port_persistence.AccountStore
	ids      port_platform.IDGenerator
	logger   *zap.Logger
	waits    Waits
}

func NewOpenAccountUsecaseImpl(
	accounts port_persistence.AccountStore,
	ids port_platform.IDGenerator,
	logger *zap.Logger,
	waits Waits,
) *OpenAccountUsecaseImpl {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &OpenAccountUsecaseImpl{
		accounts: accounts,
		ids:      ids,
		logger:   logger,
		waits:    waits,
	}
}

var _ port_account.OpenAccountUseCase = (*OpenAccountUsecaseImpl)(nil)

func (u *OpenAccountUsecaseImpl) Execute(ctx context.Context, in port_account.OpenAccountInput) (port_account.AccountOutput, error) {
	if in.Balance.IsNegative() {
		return port_account.AccountOutput{}, ErrInvalidBalance
	}

	id := strings.TrimSpace(in.AccountID)
	if id == "" {
		id = u.ids.NewUUID().String()
	}

	acc, err := domain_account.New(domain_account.NewParams{
		AccountID:  id,
		Balance:    in.Balance,
		DebitWait:  u.waits.DebitWait,
		CreditWait: u.waits.CreditWait,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain_account.ErrNegativeBalance):
			return port_account.AccountOutput{}, ErrInvalidBalance
		default:
			return port_account.AccountOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	if err := u.accounts.Create(ctx, acc); err != nil {
		if errors.Is(err, port_persistence.ErrAlreadyExists) {
			return port_account.AccountOutput{}, fmt.Errorf("%w: %q", ErrDuplicateAccount, id)
		}
		return port_account.AccountOutput{}, err
	}

	u.logger.Info("account opened",
		zap.String("account_id", id),
		zap.Stringer("balance", in.Balance),
	)

	return port_account.AccountOutput{AccountID: id, Balance: in.Balance}, nil
}
