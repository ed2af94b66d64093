package domain_transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	CorrelationID() string
}

type TransferRequested struct {
	At             time.Time
	TransferID     uuid.UUID
	CorrelationID_ string

	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

func (e TransferRequested) EventName() string { return "transfer.requested" }

func (e TransferRequested) OccurredAt() time.Time { return e.At }

func (e TransferRequested) AggregateID() uuid.UUID { return e.TransferID }

func (e TransferRequested) CorrelationID() string { return e.CorrelationID_ }

type TransferCompleted struct {
	At             time.Time
	TransferID     uuid.UUID
	CorrelationID_ string

	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

func (e TransferCompleted) EventName() string { return "transfer.completed" }

func (e TransferCompleted) OccurredAt() time.Time { return e.At }

func (e TransferCompleted) AggregateID() uuid.UUID { return e.TransferID }

func (e TransferCompleted) CorrelationID() string { return e.CorrelationID_ }

type TransferRejected struct {
	At             time.Time
	TransferID     uuid.UUID
	CorrelationID_ string
	Reason         RejectReason
}

func (e TransferRejected) EventName() string { return "transfer.rejected" }

func (e TransferRejected) OccurredAt() time.Time { return e.At }

func (e TransferRejected) AggregateID() uuid.UUID { return e.TransferID }

func (e TransferRejected) CorrelationID() string { return e.CorrelationID_ }
