package redis

import (
	"context"
	"encoding/json"
	"errors"
	"parkwatch/pkg/e"
	"time"

	"parkwatch/internal/domain"

	"github.com/redis/go-redis/v9"
)

// AlertQueue buffers raised double-parking alerts for the webhook
// dispatcher. The engine only enqueues; delivery happens out of band.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, notification domain.AlertNotification) error {
	b, err := json.Marshal(notification)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AlertNotification, error) {
	var n domain.AlertNotification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
