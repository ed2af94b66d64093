package messaging

import (
	"context"
)

// Publisher delivers an opaque payload to every subscriber of channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}
