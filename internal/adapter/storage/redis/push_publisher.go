package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-governance/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// PushPublisher implements ports.PushPublisher over Redis pub/sub.
type PushPublisher struct {
	client  *goredis.Client
	channel string
}

// NewPushPublisher creates a publisher that writes to channel.
func NewPushPublisher(client *goredis.Client, channel string) *PushPublisher {
	return &PushPublisher{client: client, channel: channel}
}

// Publish sends the push as JSON. Zero subscribers is not an error.
func (p *PushPublisher) Publish(ctx context.Context, ev domain.PushEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode push %s: %w", ev.Kind, err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", ev.Kind, err)
	}
	return nil
}
