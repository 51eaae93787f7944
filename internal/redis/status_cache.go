package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"parkwatch/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type StatusCacheService interface {
	GetSlots(ctx context.Context) ([]domain.Slot, error)
	SetSlots(ctx context.Context, slots []domain.Slot, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// StatusCache keeps the current slot list so that dashboard polls and
// observer snapshots don't hit Postgres on every read. A miss returns
// (nil, nil); callers fall back to storage.
type StatusCache struct {
	client *goredis.Client
	key    string
}

func NewStatusCache(r *Redis) *StatusCache {
	return &StatusCache{
		client: r.Client,
		key:    "parking:slots",
	}
}

func (c *StatusCache) GetSlots(ctx context.Context) ([]domain.Slot, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var slots []domain.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

func (c *StatusCache) SetSlots(ctx context.Context, slots []domain.Slot, ttl time.Duration) error {
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *StatusCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
