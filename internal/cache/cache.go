// Package cache is a thin read cache over redis for the visitor
// aggregate endpoints. It is optional: with no REDIS_ADDR configured,
// or with redis unreachable, every call is a no-op and reads fall
// through to the store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/config"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, cache disabled")
		return &Cache{}
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("redis cache enabled")

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get reports whether key was present and decoded into v.
func (c *Cache) Get(ctx context.Context, key string, v any) bool {
	if !c.Enabled() {
		return false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), v) == nil
}

func (c *Cache) Set(ctx context.Context, key string, v any) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
