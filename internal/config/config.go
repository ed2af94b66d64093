// Package config holds the runtime settings of the ledger service and binds
// them to command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	LogLevel       string
	LogDevelopment bool

	// Transfer guard waits.
	SourceLockWait      time.Duration
	DestinationLockWait time.Duration

	// Standalone deposit and withdraw waits, per account.
	DebitWait  time.Duration
	CreditWait time.Duration

	// Empty RedisAddr selects the log notification sink.
	RedisAddr            string
	RedisChannel         string
	NotifyMaxInFlight    int64
	NotifyPublishTimeout time.Duration
	BreakerFailures      uint32
	BreakerOpenTimeout   time.Duration
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: 15 * time.Second,

		LogLevel: "info",

		SourceLockWait:      10 * time.Second,
		DestinationLockWait: 100 * time.Millisecond,

		DebitWait:  100 * time.Millisecond,
		CreditWait: 10 * time.Second,

		RedisChannel:         "ledger.notifications",
		NotifyMaxInFlight:    64,
		NotifyPublishTimeout: 2 * time.Second,
		BreakerFailures:      5,
		BreakerOpenTimeout:   30 * time.Second,
	}
}

func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.HTTPAddr, "http-addr", c.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&c.ShutdownTimeout, "shutdown-timeout", c.ShutdownTimeout, "grace period for in-flight requests on shutdown")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.LogDevelopment, "log-development", c.LogDevelopment, "human readable console logs")

	fs.DurationVar(&c.SourceLockWait, "source-lock-wait", c.SourceLockWait, "max wait for the source account lock during a transfer")
	fs.DurationVar(&c.DestinationLockWait, "destination-lock-wait", c.DestinationLockWait, "max wait for the destination account lock during a transfer")
	fs.DurationVar(&c.DebitWait, "debit-wait", c.DebitWait, "max wait for an account lock on withdraw")
	fs.DurationVar(&c.CreditWait, "credit-wait", c.CreditWait, "max wait for an account lock on deposit")

	fs.StringVar(&c.RedisAddr, "redis-addr", c.RedisAddr, "redis address for notifications; empty logs them instead")
	fs.StringVar(&c.RedisChannel, "redis-channel", c.RedisChannel, "redis pub/sub channel for notifications")
	fs.Int64Var(&c.NotifyMaxInFlight, "notify-max-inflight", c.NotifyMaxInFlight, "max notifications being delivered at once")
	fs.DurationVar(&c.NotifyPublishTimeout, "notify-publish-timeout", c.NotifyPublishTimeout, "timeout of a single notification publish")
	fs.Uint32Var(&c.BreakerFailures, "breaker-failures", c.BreakerFailures, "consecutive publish failures that open the circuit breaker")
	fs.DurationVar(&c.BreakerOpenTimeout, "breaker-open-timeout", c.BreakerOpenTimeout, "time the circuit breaker stays open")
}

func (c Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, errors.New("http-addr is required"))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log-level: %w", err))
	}

	durations := []struct {
		flag  string
		value time.Duration
	}{
		{"shutdown-timeout", c.ShutdownTimeout},
		{"source-lock-wait", c.SourceLockWait},
		{"destination-lock-wait", c.DestinationLockWait},
		{"debit-wait", c.DebitWait},
		{"credit-wait", c.CreditWait},
		{"notify-publish-timeout", c.NotifyPublishTimeout},
		{"breaker-open-timeout", c.BreakerOpenTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0", d.flag))
		}
	}

	if c.NotifyMaxInFlight <= 0 {
		errs = append(errs, errors.New("notify-max-inflight must be > 0"))
	}

	if c.BreakerFailures == 0 {
		errs = append(errs, errors.New("breaker-failures must be > 0"))
	}

	if c.RedisAddr != "" && strings.TrimSpace(c.RedisChannel) == "" {
		errs = append(errs, errors.New("redis-channel is required with redis-addr"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
