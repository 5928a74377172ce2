package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// HandledEventCache implements ports.HandledEventCache using Redis SET NX.
// It only short-circuits redeliveries; the database stays authoritative.
type HandledEventCache struct {
	client *goredis.Client
	prefix string
}

// NewHandledEventCache creates a new Redis-backed handled-event cache.
func NewHandledEventCache(client *goredis.Client) *HandledEventCache {
	return &HandledEventCache{
		client: client,
		prefix: "handled_event:",
	}
}

// Seen reports whether eventID was marked and has not expired yet.
func (c *HandledEventCache) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.prefix+eventID).Result()
	if err != nil {
		return false, fmt.Errorf("redis handled event lookup: %w", err)
	}
	return n == 1, nil
}

// Mark stores eventID for ttl. It returns true when the id was not present.
func (c *HandledEventCache) Mark(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	result, err := c.client.SetArgs(ctx, c.prefix+eventID, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis handled event mark: %w", err)
	}
	return result == "OK", nil
}
