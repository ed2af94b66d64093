package impl_notification

import (
	"context"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_notification "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/notification"

	"go.uber.org/zap"
)

// LogSink writes every notification as a structured log entry. It never fails.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogSink{logger: logger.Named("notification")}
}

var _ port_notification.Sink = (*LogSink)(nil)

func (s *LogSink) Notify(_ context.Context, account *domain_account.Account, message string) error {
	s.logger.Info("account notified",
		zap.String("account_id", account.ID()),
		zap.String("message", message),
	)

	return nil
}
