// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate go tool mockgen -destination=mock_persistence.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence AccountStore
//go:generate go tool mockgen -destination=mock_notification.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/notification Sink
//go:generate go tool mockgen -destination=mock_messaging.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging Publisher
//go:generate go tool mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/platform Clock,IDGenerator
