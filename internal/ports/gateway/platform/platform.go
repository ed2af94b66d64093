package port_platform

import (
	"time"

	"github.com/google/uuid"
)

// Clock stamps transfer state changes and notification envelopes.
type Clock interface {
	Now() time.Time
}

// IDGenerator issues transfer ids and ids for accounts opened without one.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
