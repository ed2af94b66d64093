package impl_http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type openAccountRequest struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

type movementRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type accountResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

func toAccountResponse(out port_account.AccountOutput) accountResponse {
	return accountResponse{AccountID: out.AccountID, Balance: out.Balance}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}

func (s *Server) openAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, accountStatus(err), err)
		return
	}

	out, err := s.uc.OpenAccount.Execute(r.Context(), port_account.OpenAccountInput{
		AccountID: req.AccountID,
		Balance:   req.Balance,
	})
	if err != nil {
		writeErr(w, accountStatus(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(out))
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	out, err := s.uc.GetAccount.Execute(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		writeErr(w, accountStatus(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(out))
}

func (s *Server) deposit(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, s.uc.Deposit)
}

func (s *Server) withdraw(w http.ResponseWriter, r *http.Request) {
	s.move(w, r, s.uc.Withdraw)
}

type movementUseCase interface {
	Execute(ctx context.Context, input port_account.MovementInput) (port_account.AccountOutput, error)
}

func (s *Server) move(w http.ResponseWriter, r *http.Request, uc movementUseCase) {
	var req movementRequest
	if err := decode(r, &req); err != nil {
		writeErr(w, accountStatus(err), err)
		return
	}

	out, err := uc.Execute(r.Context(), port_account.MovementInput{
		AccountID: chi.URLParam(r, "accountId"),
		Amount:    req.Amount,
	})
	if err != nil {
		writeErr(w, accountStatus(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(out))
}
