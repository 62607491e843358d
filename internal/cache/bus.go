package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const ChannelInvalidation = "lumenpay:cache_invalidation"

// InvalidationMessage crosses gateway replicas over Redis pub/sub.
type InvalidationMessage struct {
	Origin    string   `json:"origin"`
	Resources []string `json:"resources"`
}

// Bus fans cache invalidations out to every gateway replica and, through
// the subscriber, to connected admin UIs.
type Bus struct {
	client *redis.Client
	origin string
	logger zerolog.Logger
}

func NewBus(client *redis.Client, logger zerolog.Logger) *Bus {
	return &Bus{
		client: client,
		origin: uuid.NewString(),
		logger: logger,
	}
}

// Origin identifies this replica in published messages.
func (b *Bus) Origin() string {
	return b.origin
}

func (b *Bus) Publish(ctx context.Context, resources ...Resource) error {
	msg := InvalidationMessage{Origin: b.origin}
	for _, r := range resources {
		msg.Resources = append(msg.Resources, string(r))
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal invalidation message: %w", err)
	}

	return b.client.Publish(ctx, ChannelInvalidation, data).Err()
}

// Subscribe blocks, delivering invalidation messages to handler until ctx
// is canceled.
func (b *Bus) Subscribe(ctx context.Context, handler func(msg *InvalidationMessage)) error {
	pubsub := b.client.Subscribe(ctx, ChannelInvalidation)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			var invalidation InvalidationMessage
			if err := json.Unmarshal([]byte(msg.Payload), &invalidation); err != nil {
				b.logger.Warn().Err(err).Msg("dropping malformed invalidation message")
				continue
			}

			handler(&invalidation)
		}
	}
}
