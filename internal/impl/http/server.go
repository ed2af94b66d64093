package impl_http

import (
	"net/http"
	"time"

	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const CorrelationHeader = "X-Correlation-ID"

type UseCases struct {
	OpenAccount    port_account.OpenAccountUseCase
	GetAccount     port_account.GetAccountUseCase
	Deposit        port_account.DepositUseCase
	Withdraw       port_account.WithdrawUseCase
	CreateTransfer port_transfer.CreateTransferUseCase
}

type Server struct {
	uc     UseCases
	logger *zap.Logger
}

func NewServer(uc UseCases, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{uc: uc, logger: logger.Named("http")}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/healthz", s.health)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", s.openAccount)
			r.Get("/{accountId}", s.getAccount)
			r.Post("/{accountId}/deposit", s.deposit)
			r.Post("/{accountId}/withdraw", s.withdraw)
		})

		r.Post("/transaction/transfer/{fromAccountId}/{toAccountId}/{amount}", s.transfer)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// correlationID prefers the caller's header and falls back to the request id.
func correlationID(r *http.Request) string {
	if id := r.Header.Get(CorrelationHeader); id != "" {
		return id
	}
	return middleware.GetReqID(r.Context())
}
