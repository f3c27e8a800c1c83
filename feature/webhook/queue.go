package webhook

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the inbound webhook queue.
type Config struct {
	// RedisAddr is the address of the Redis instance backing the queue.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// Key is the Redis list the raw webhook payloads are pushed onto.
	Key string `mapstructure:"key" default:"listing:webhooks"`
}

// Enqueuer pushes a raw webhook payload onto the processing queue.
type Enqueuer interface {
	Enqueue(ctx context.Context, payload []byte) error
}

// listPusher abstracts the minimal surface we need from a Redis client.
type listPusher interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisQueue implements Enqueuer over a Redis list. Heavier processing of
// platform events (calendar locks, workflow triggers) is picked up by
// workers consuming the same list.
type RedisQueue struct {
	client listPusher
	key    string
}

// NewRedisQueue connects a queue to the configured Redis instance.
func NewRedisQueue(cfg Config) *RedisQueue {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	return &RedisQueue{client: client, key: cfg.Key}
}

// Enqueue pushes one payload onto the list.
func (q *RedisQueue) Enqueue(ctx context.Context, payload []byte) error {
	if err := q.client.LPush(ctx, q.key, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue webhook payload: %w", err)
	}
	return nil
}
