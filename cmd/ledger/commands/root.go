package commands

import (
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	root := &cobra.Command{
		Use:          "ledger",
		Short:        "In-memory ledger with concurrent account transfers",
		SilenceUsage: true,
	}

	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(serveCmd(&cfg))
	return root
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())

	return zc.Build()
}
