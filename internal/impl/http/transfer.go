package impl_http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type transferResponse struct {
	TransferID    string     `json:"transferId"`
	Status        string     `json:"status"`
	CorrelationID string     `json:"correlationId,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "amount")

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("%w: %q", impl_transfer.ErrInvalidAmount, raw))
		return
	}

	out, err := s.uc.CreateTransfer.Execute(r.Context(), port_transfer.CreateTransferInput{
		FromAccountID: chi.URLParam(r, "fromAccountId"),
		ToAccountID:   chi.URLParam(r, "toAccountId"),
		Amount:        amount,
		CorrelationID: correlationID(r),
	})
	if err != nil {
		code := transferStatus(err)
		if code == http.StatusInternalServerError && !errors.Is(err, impl_transfer.ErrInsufficientFunds) {
			s.logger.Warn("transfer failed", zap.String("transfer_id", out.TransferID), zap.Error(err))
		}
		writeErr(w, code, err)
		return
	}

	resp := transferResponse{
		TransferID:    out.TransferID,
		Status:        out.Status,
		CorrelationID: out.CorrelationID,
	}
	if !out.CompletedAt.IsZero() {
		resp.CompletedAt = &out.CompletedAt
	}

	writeJSON(w, http.StatusOK, resp)
}
