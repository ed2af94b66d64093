package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

// lockedPair holds the guards of both sides of a transfer.
type lockedPair struct {
	source      *domain_account.Held
	destination *domain_account.Held

	// acquisition order, released in reverse
	acquired []*domain_account.Held
}

func (p *lockedPair) release() {
	for i := len(p.acquired) - 1; i >= 0; i-- {
		p.acquired[i].Unlock()
	}
	p.acquired = nil
}

// lockPair takes both guards in ascending account id order, whatever the
// transfer direction, so two transfers over the same pair can never wait on
// each other in a cycle. Each side keeps its own wait budget. On failure no
// guard is left held.
func lockPair(
	ctx context.Context,
	source, destination *domain_account.Account,
	sourceWait, destinationWait time.Duration,
) (*lockedPair, error) {
	pair := &lockedPair{}

	type side struct {
		account *domain_account.Account
		wait    time.Duration
		slot    **domain_account.Held
	}

	sides := [2]side{
		{account: source, wait: sourceWait, slot: &pair.source},
		{account: destination, wait: destinationWait, slot: &pair.destination},
	}
	if destination.ID() < source.ID() {
		sides[0], sides[1] = sides[1], sides[0]
	}

	for _, s := range sides {
		held, err := s.account.Lock(ctx, s.wait)
		if err != nil {
			pair.release()
			return nil, mapLockError(s.account.ID(), err)
		}

		pair.acquired = append(pair.acquired, held)
		*s.slot = held
	}

	return pair, nil
}

func mapLockError(accountID string, err error) error {
	switch {
	case errors.Is(err, domain_account.ErrLockInterrupted):
		return fmt.Errorf("%w: account %s: %w", ErrInterrupted, accountID, err)
	case errors.Is(err, domain_account.ErrLockTimeout):
		return fmt.Errorf("%w: account %s: %w", ErrLockTimeout, accountID, err)
	default:
		return err
	}
}
