package domain_transfer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer tracks a single transfer call from RECEIVED to DONE or REJECTED.
// It is not persisted.
type Transfer struct {
	id uuid.UUID

	fromAccountID string
	toAccountID   string
	amount        decimal.Decimal

	status        Status
	correlationID string
	failureReason RejectReason

	createdAt time.Time
	updatedAt time.Time

	pendingEvents []DomainEvent
}

type NewParams struct {
	TransferID    uuid.UUID
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CorrelationID string
	Now           time.Time
}

// New records a received request. Amount and account checks happen later in
// Validate, so a malformed request still gets a Transfer that can be rejected.
func New(p NewParams) (*Transfer, error) {
	if p.TransferID == uuid.Nil {
		return nil, ErrInvalidTransferID
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	t := &Transfer{
		id:            p.TransferID,
		fromAccountID: strings.TrimSpace(p.FromAccountID),
		toAccountID:   strings.TrimSpace(p.ToAccountID),
		amount:        p.Amount,
		status:        StatusReceived,
		correlationID: strings.TrimSpace(p.CorrelationID),
		createdAt:     p.Now,
		updatedAt:     p.Now,
	}

	t.raise(TransferRequested{
		At:             p.Now,
		TransferID:     t.id,
		CorrelationID_: t.correlationID,
		FromAccountID:  t.fromAccountID,
		ToAccountID:    t.toAccountID,
		Amount:         t.amount,
	})

	return t, nil
}

// Validate checks the amount and the account pair and moves to VALIDATED.
func (t *Transfer) Validate(now time.Time) error {
	if t.status != StatusReceived {
		return t.invalidTransition()
	}

	if !t.amount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.fromAccountID == t.toAccountID {
		return ErrSameAccount
	}

	return t.advance(StatusValidated, now)
}

func (t *Transfer) BeginLocking(now time.Time) error {
	return t.advance(StatusLocking, now)
}

func (t *Transfer) MarkDebited(now time.Time) error {
	return t.advance(StatusDebited, now)
}

func (t *Transfer) MarkCredited(now time.Time) error {
	return t.advance(StatusCredited, now)
}

func (t *Transfer) Complete(now time.Time) error {
	if err := t.advance(StatusDone, now); err != nil {
		return err
	}

	t.raise(TransferCompleted{
		At:             t.updatedAt,
		TransferID:     t.id,
		CorrelationID_: t.correlationID,
		FromAccountID:  t.fromAccountID,
		ToAccountID:    t.toAccountID,
		Amount:         t.amount,
	})

	return nil
}

func (t *Transfer) Reject(reason RejectReason, now time.Time) error {
	if t.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	if _, known := rejectableFrom[reason]; !known {
		return ErrUnknownRejectReason
	}

	if !reason.allowedFrom(t.status) {
		return ErrInvalidStateTransition
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	t.status = StatusRejected
	t.failureReason = reason
	t.updatedAt = now

	t.raise(TransferRejected{
		At:             now,
		TransferID:     t.id,
		CorrelationID_: t.correlationID,
		Reason:         reason,
	})

	return nil
}

func (t *Transfer) advance(to Status, now time.Time) error {
	if forward[t.status] != to {
		return t.invalidTransition()
	}

	if now.IsZero() {
		now = time.Now().UTC()
	}

	t.status = to
	t.updatedAt = now

	return nil
}

func (t *Transfer) invalidTransition() error {
	if t.status.IsFinal() {
		return ErrAlreadyFinalized
	}

	return ErrInvalidStateTransition
}

func (t *Transfer) PullEvents() []DomainEvent {
	if len(t.pendingEvents) == 0 {
		return nil
	}

	ev := make([]DomainEvent, len(t.pendingEvents))
	copy(ev, t.pendingEvents)

	t.pendingEvents = t.pendingEvents[:0]

	return ev
}

func (t *Transfer) raise(event DomainEvent) {
	t.pendingEvents = append(t.pendingEvents, event)
}

func (t *Transfer) ID() uuid.UUID { return t.id }

func (t *Transfer) FromAccountID() string { return t.fromAccountID }

func (t *Transfer) ToAccountID() string { return t.toAccountID }

func (t *Transfer) Amount() decimal.Decimal { return t.amount }

func (t *Transfer) Status() Status { return t.status }

func (t *Transfer) CorrelationID() string { return t.correlationID }

func (t *Transfer) FailureReason() RejectReason { return t.failureReason }

func (t *Transfer) CreatedAt() time.Time { return t.createdAt }

func (t *Transfer) UpdatedAt() time.Time { return t.updatedAt }
