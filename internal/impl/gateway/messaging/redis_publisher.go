package impl_messaging

import (
	"context"
	"fmt"

	messaging "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/messaging"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher sends payloads with PUBLISH. Delivery is at most once: a
// channel without subscribers drops the message.
type RedisPublisher struct {
	client redis.UniversalClient
}

func NewRedisPublisher(client redis.UniversalClient) *RedisPublisher {
	return &RedisPublisher{client: client}
}

var _ messaging.Publisher = (*RedisPublisher)(nil)

func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %q: %w", channel, err)
	}

	return nil
}

// Ping reports whether the server is reachable.
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
