package domain_transfer_test

import (
	"errors"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNew(t *testing.T) {
	validID := uuid.New()
	now := time.Now().UTC()

	t.Run("creates received transfer with valid parameters", func(t *testing.T) {
		transfer, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:    validID,
			FromAccountID: "12",
			ToAccountID:   "13",
			Amount:        decimal.NewFromInt(100),
			CorrelationID: " correlation_id ",
			Now:           now,
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if transfer.ID() != validID {
			t.Errorf("expected transfer id %v, got %v", validID, transfer.ID())
		}

		if transfer.FromAccountID() != "12" || transfer.ToAccountID() != "13" {
			t.Errorf("expected accounts 12 -> 13, got %s -> %s", transfer.FromAccountID(), transfer.ToAccountID())
		}

		if !transfer.Amount().Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected amount 100, got %s", transfer.Amount())
		}

		if transfer.Status() != domain_transfer.StatusReceived {
			t.Errorf("expected status received, got %v", transfer.Status())
		}

		if transfer.CorrelationID() != "correlation_id" {
			t.Errorf("expected correlation id 'correlation_id', got %s", transfer.CorrelationID())
		}

		if !transfer.CreatedAt().Equal(now) || !transfer.UpdatedAt().Equal(now) {
			t.Errorf("expected timestamps %v, got %v / %v", now, transfer.CreatedAt(), transfer.UpdatedAt())
		}
	})

	t.Run("uses current time when Now is zero", func(t *testing.T) {
		transfer, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:    validID,
			FromAccountID: "12",
			ToAccountID:   "13",
			Amount:        decimal.NewFromInt(1),
		})

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if transfer.CreatedAt().IsZero() {
			t.Error("expected created at to be set, got zero time")
		}
	})

	t.Run("raises TransferRequested event", func(t *testing.T) {
		transfer, _ := domain_transfer.New(domain_transfer.NewParams{
			TransferID:    validID,
			FromAccountID: "12",
			ToAccountID:   "13",
			Amount:        decimal.NewFromInt(5),
			CorrelationID: "correlation_id",
			Now:           now,
		})

		events := transfer.PullEvents()
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}

		event, ok := events[0].(domain_transfer.TransferRequested)
		if !ok {
			t.Fatalf("expected TransferRequested event, got %T", events[0])
		}

		if event.AggregateID() != validID || event.CorrelationID() != "correlation_id" {
			t.Errorf("unexpected event identity: %+v", event)
		}

		if !event.Amount.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected amount 5, got %s", event.Amount)
		}

		if len(transfer.PullEvents()) != 0 {
			t.Errorf("expected PullEvents to clear queue")
		}
	})

	t.Run("returns error when transfer id is nil", func(t *testing.T) {
		_, err := domain_transfer.New(domain_transfer.NewParams{
			TransferID:    uuid.Nil,
			FromAccountID: "12",
			ToAccountID:   "13",
			Amount:        decimal.NewFromInt(1),
		})

		if !errors.Is(err, domain_transfer.ErrInvalidTransferID) {
			t.Errorf("expected error %v, got %v", domain_transfer.ErrInvalidTransferID, err)
		}
	})
}

func newReceived(t *testing.T, from, to string, amount decimal.Decimal) *domain_transfer.Transfer {
	t.Helper()

	transfer, err := domain_transfer.New(domain_transfer.NewParams{
		TransferID:    uuid.New(),
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
		CorrelationID: "correlation_id",
		Now:           time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	transfer.PullEvents()

	return transfer
}

func TestTransfer_Validate(t *testing.T) {
	now := time.Now().UTC()

	t.Run("moves to validated", func(t *testing.T) {
		transfer := newReceived(t, "12", "13", decimal.NewFromInt(10))

		if err := transfer.Validate(now); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if transfer.Status() != domain_transfer.StatusValidated {
			t.Errorf("expected status validated, got %v", transfer.Status())
		}
	})

	errorTests := []struct {
		name      string
		from, to  string
		amount    decimal.Decimal
		wantError error
	}{
		{"returns error when amount is zero", "12", "13", decimal.Zero, domain_transfer.ErrInvalidAmount},
		{"returns error when amount is negative", "12", "13", decimal.NewFromInt(-1), domain_transfer.ErrInvalidAmount},
		{"returns error when accounts are the same", "12", "12", decimal.NewFromInt(1), domain_transfer.ErrSameAccount},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := newReceived(t, tt.from, tt.to, tt.amount)

			err := transfer.Validate(now)
			if !errors.Is(err, tt.wantError) {
				t.Errorf("expected error %v, got %v", tt.wantError, err)
			}

			if transfer.Status() != domain_transfer.StatusReceived {
				t.Errorf("expected status to remain received, got %v", transfer.Status())
			}
		})
	}

	t.Run("returns error when validated twice", func(t *testing.T) {
		transfer := newReceived(t, "12", "13", decimal.NewFromInt(10))
		_ = transfer.Validate(now)

		if err := transfer.Validate(now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
			t.Errorf("expected error %v, got %v", domain_transfer.ErrInvalidStateTransition, err)
		}
	})
}

func TestTransfer_HappyPath(t *testing.T) {
	now := time.Now().UTC()
	later := now.Add(time.Second)

	transfer := newReceived(t, "12", "13", decimal.NewFromInt(30))

	steps := []struct {
		name string
		run  func(time.Time) error
		want domain_transfer.Status
	}{
		{"validate", transfer.Validate, domain_transfer.StatusValidated},
		{"begin locking", transfer.BeginLocking, domain_transfer.StatusLocking},
		{"mark debited", transfer.MarkDebited, domain_transfer.StatusDebited},
		{"mark credited", transfer.MarkCredited, domain_transfer.StatusCredited},
		{"complete", transfer.Complete, domain_transfer.StatusDone},
	}

	for _, step := range steps {
		if err := step.run(later); err != nil {
			t.Fatalf("%s: expected no error, got %v", step.name, err)
		}

		if transfer.Status() != step.want {
			t.Fatalf("%s: expected status %v, got %v", step.name, step.want, transfer.Status())
		}
	}

	if !transfer.UpdatedAt().Equal(later) {
		t.Errorf("expected updated at %v, got %v", later, transfer.UpdatedAt())
	}

	events := transfer.PullEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	event, ok := events[0].(domain_transfer.TransferCompleted)
	if !ok {
		t.Fatalf("expected TransferCompleted event, got %T", events[0])
	}

	if event.FromAccountID != "12" || event.ToAccountID != "13" || !event.Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("unexpected event payload: %+v", event)
	}

	if err := transfer.Reject(domain_transfer.ReasonLockTimeout, later); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
		t.Errorf("expected error %v, got %v", domain_transfer.ErrAlreadyFinalized, err)
	}

	if err := transfer.Complete(later); !errors.Is(err, domain_transfer.ErrAlreadyFinalized) {
		t.Errorf("expected error %v, got %v", domain_transfer.ErrAlreadyFinalized, err)
	}
}

func TestTransfer_SkippingStepsFails(t *testing.T) {
	now := time.Now().UTC()

	transfer := newReceived(t, "12", "13", decimal.NewFromInt(1))

	if err := transfer.BeginLocking(now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
		t.Errorf("expected error %v, got %v", domain_transfer.ErrInvalidStateTransition, err)
	}

	if err := transfer.Complete(now); !errors.Is(err, domain_transfer.ErrInvalidStateTransition) {
		t.Errorf("expected error %v, got %v", domain_transfer.ErrInvalidStateTransition, err)
	}

	if transfer.Status() != domain_transfer.StatusReceived {
		t.Errorf("expected status to remain received, got %v", transfer.Status())
	}
}

func TestTransfer_Reject(t *testing.T) {
	now := time.Now().UTC()

	toLocking := func(tr *domain_transfer.Transfer) {
		_ = tr.Validate(now)
		_ = tr.BeginLocking(now)
	}

	tests := []struct {
		name    string
		prepare func(*domain_transfer.Transfer)
		reason  domain_transfer.RejectReason
		wantErr error
	}{
		{"account not found from received", func(*domain_transfer.Transfer) {}, domain_transfer.ReasonAccountNotFound, nil},
		{"invalid amount from received", func(*domain_transfer.Transfer) {}, domain_transfer.ReasonInvalidAmount, nil},
		{"lock timeout from locking", toLocking, domain_transfer.ReasonLockTimeout, nil},
		{"interrupted from locking", toLocking, domain_transfer.ReasonInterrupted, nil},
		{"insufficient funds from locking", toLocking, domain_transfer.ReasonInsufficientFunds, nil},
		{"lock timeout from received is invalid", func(*domain_transfer.Transfer) {}, domain_transfer.ReasonLockTimeout, domain_transfer.ErrInvalidStateTransition},
		{"account not found from locking is invalid", toLocking, domain_transfer.ReasonAccountNotFound, domain_transfer.ErrInvalidStateTransition},
		{"unknown reason", func(*domain_transfer.Transfer) {}, domain_transfer.RejectReason("BOGUS"), domain_transfer.ErrUnknownRejectReason},
		{
			"nothing can be rejected after debit",
			func(tr *domain_transfer.Transfer) {
				toLocking(tr)
				_ = tr.MarkDebited(now)
			},
			domain_transfer.ReasonInsufficientFunds,
			domain_transfer.ErrInvalidStateTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := newReceived(t, "12", "13", decimal.NewFromInt(1))
			tt.prepare(transfer)
			before := transfer.Status()

			err := transfer.Reject(tt.reason, now)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}

				if transfer.Status() != before {
					t.Errorf("expected status to remain %v, got %v", before, transfer.Status())
				}
				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if transfer.Status() != domain_transfer.StatusRejected {
				t.Errorf("expected status rejected, got %v", transfer.Status())
			}

			if transfer.FailureReason() != tt.reason {
				t.Errorf("expected failure reason %v, got %v", tt.reason, transfer.FailureReason())
			}

			events := transfer.PullEvents()
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}

			if ev, ok := events[0].(domain_transfer.TransferRejected); !ok || ev.Reason != tt.reason {
				t.Errorf("expected TransferRejected with reason %v, got %#v", tt.reason, events[0])
			}
		})
	}
}
