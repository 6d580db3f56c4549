package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"rollcall/internal/platform/metrics"
	"rollcall/pkg/platform/circuit"
)

const cacheKeyPrefix = "rollcall:metadata:"

// RedisCache is a cache-aside Registry in front of another Registry. Metadata
// is stored as JSON with a TTL. Cache failures fall through to the wrapped
// registry; after repeated Redis errors a circuit breaker skips the cache
// until a probe succeeds.
type RedisCache struct {
	next    Registry
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	breaker *circuit.Breaker
	logger  *slog.Logger
}

type CacheOption func(*RedisCache)

func WithBreaker(b *circuit.Breaker) CacheOption {
	return func(c *RedisCache) {
		c.breaker = b
	}
}

func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *RedisCache) {
		c.logger = logger
	}
}

// NewRedisCache wraps next with a Redis cache.
func NewRedisCache(next Registry, client *redis.Client, ttl time.Duration, m *metrics.Metrics, opts ...CacheOption) *RedisCache {
	c := &RedisCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		breaker: circuit.New("metadata-cache"),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) Get(ctx context.Context, abbr string) (*Metadata, error) {
	if c.breaker.Allow() {
		cached, err := c.find(ctx, abbr)
		c.record(ctx, err)
		if err == nil && cached != nil {
			c.metrics.RecordCacheHit()
			return cached, nil
		}
	}
	c.metrics.RecordCacheMiss()

	m, err := c.next.Get(ctx, abbr)
	if err != nil {
		return nil, err
	}
	if c.breaker.Allow() {
		c.record(ctx, c.save(ctx, abbr, m))
	}
	return m, nil
}

// Invalidate drops the cached metadata for abbr.
func (c *RedisCache) Invalidate(ctx context.Context, abbr string) error {
	if err := c.client.Del(ctx, cacheKeyPrefix+abbr).Err(); err != nil {
		return fmt.Errorf("invalidate metadata cache: %w", err)
	}
	return nil
}

// find returns nil metadata on a miss or an undecodable entry. Only Redis
// failures are errors.
func (c *RedisCache) find(ctx context.Context, abbr string) (*Metadata, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+abbr).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("find metadata cache: %w", err)
	}
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		c.logger.WarnContext(ctx, "discarding undecodable metadata cache entry",
			"jurisdiction", abbr,
			"error", err.Error(),
		)
		return nil, nil
	}
	return &m, nil
}

func (c *RedisCache) save(ctx context.Context, abbr string, m *Metadata) error {
	raw, err := json.Marshal(m)
	if err != nil {
		c.logger.WarnContext(ctx, "metadata not cacheable", "jurisdiction", abbr, "error", err.Error())
		return nil
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+abbr, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("save metadata cache: %w", err)
	}
	return nil
}

func (c *RedisCache) record(ctx context.Context, err error) {
	if err == nil {
		if _, change := c.breaker.RecordSuccess(); change.Closed {
			c.logger.InfoContext(ctx, "metadata cache circuit closed")
		}
		return
	}
	if _, change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "metadata cache circuit opened", "error", err.Error())
	}
}
