package domain_account

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// guard is an exclusive lock with bounded-wait acquisition.
type guard struct {
	sem *semaphore.Weighted
}

func newGuard() *guard {
	return &guard{sem: semaphore.NewWeighted(1)}
}

// acquire waits at most wait for the guard. A non-positive wait blocks until
// ctx is done. Expiry of wait yields ErrLockTimeout; cancellation of ctx
// itself yields ErrLockInterrupted.
func (g *guard) acquire(ctx context.Context, wait time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLockInterrupted, err)
	}

	waitCtx := ctx
	if wait > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, wait)
		defer cancel()
	}

	if err := g.sem.Acquire(waitCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrLockInterrupted, ctxErr)
		}
		return fmt.Errorf("%w (waited %s)", ErrLockTimeout, wait)
	}

	return nil
}

func (g *guard) release() {
	g.sem.Release(1)
}
