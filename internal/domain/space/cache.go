package space

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache keeps space detail payloads in Redis so listing pages don't hit
// Postgres on every view. All methods tolerate a nil client, which is
// how the service runs without Redis in development.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates the space cache
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func detailKey(idOrSlug string) string {
	return "space:detail:" + idOrSlug
}

// Get returns a cached space, or nil on miss or any Redis error
func (c *Cache) Get(ctx context.Context, idOrSlug string) *Space {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, detailKey(idOrSlug)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("Space cache read failed")
		}
		return nil
	}

	var s Space
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	return &s
}

// Set stores a space under both its ID and slug
func (c *Cache) Set(ctx context.Context, s *Space) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		return
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, detailKey(s.ID.String()), data, c.ttl)
	pipe.Set(ctx, detailKey(s.Slug), data, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Msg("Space cache write failed")
	}
}

// Invalidate drops a space from the cache after a write
func (c *Cache) Invalidate(ctx context.Context, s *Space) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, detailKey(s.ID.String()), detailKey(s.Slug)).Err(); err != nil {
		log.Warn().Err(err).Msg("Space cache invalidation failed")
	}
}
