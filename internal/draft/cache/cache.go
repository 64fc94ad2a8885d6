// Package cache mirrors draft steps in Redis so reloads and resumes do not wait on Postgres.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/cosigner/internal/draft"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func stepsKey(userID string) string {
	return "draft:" + userID + ":steps"
}

func unsyncedKey(userID string) string {
	return "draft:" + userID + ":unsynced"
}

func (c *Cache) Put(ctx context.Context, userID string, step draft.Step, payload []byte) error {
	key := stepsKey(userID)

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, string(step), payload)

	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("caching step: %w", err)
	}

	return nil
}

func (c *Cache) Get(ctx context.Context, userID string) (map[draft.Step][]byte, error) {
	fields, err := c.client.HGetAll(ctx, stepsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading cached steps: %w", err)
	}

	out := make(map[draft.Step][]byte, len(fields))
	for step, payload := range fields {
		out[draft.Step(step)] = []byte(payload)
	}

	return out, nil
}

// MarkUnsynced flags a step whose durable write failed. The flag set never expires so a
// pending write is not forgotten while its payload is still cached.
func (c *Cache) MarkUnsynced(ctx context.Context, userID string, step draft.Step) error {
	key := unsyncedKey(userID)

	pipe := c.client.TxPipeline()
	pipe.SAdd(ctx, key, string(step))
	pipe.Persist(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("marking step unsynced: %w", err)
	}

	return nil
}

func (c *Cache) ClearUnsynced(ctx context.Context, userID string, step draft.Step) error {
	if err := c.client.SRem(ctx, unsyncedKey(userID), string(step)).Err(); err != nil {
		return fmt.Errorf("clearing unsynced step: %w", err)
	}

	return nil
}

func (c *Cache) Unsynced(ctx context.Context, userID string) ([]draft.Step, error) {
	members, err := c.client.SMembers(ctx, unsyncedKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading unsynced steps: %w", err)
	}

	steps := make([]draft.Step, 0, len(members))
	for _, m := range members {
		steps = append(steps, draft.Step(m))
	}

	return steps, nil
}

func (c *Cache) Drop(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, stepsKey(userID), unsyncedKey(userID)).Err(); err != nil {
		return fmt.Errorf("dropping cached draft: %w", err)
	}

	return nil
}
