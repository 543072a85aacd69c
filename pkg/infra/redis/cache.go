package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
)

const (
	listKeyPrefix = "procurements:list:"
	listTTL       = 30 * time.Second
)

// Cache is a Redis-backed procurement listing cache. Listings change on
// every create/join, so entries are short-lived and invalidated in bulk.
type Cache struct {
	client *redis.Client
}

var _ interfaces.ProcurementCache = (*Cache)(nil)

// New connects to Redis and verifies connectivity
func New(ctx context.Context, addr, password string, db int) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to ping redis", goerr.V("addr", addr))
	}

	return &Cache{client: client}, nil
}

// GetList returns a cached listing for the filter, or (nil, nil) on miss
func (c *Cache) GetList(ctx context.Context, filter *model.ProcurementFilter) ([]*model.ProcurementSummary, error) {
	data, err := c.client.Get(ctx, listKey(filter)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cached listing")
	}

	var items []*model.ProcurementSummary
	if err := json.Unmarshal(data, &items); err != nil {
		// Stale or corrupt entry, treat as a miss
		ctxlog.From(ctx).Warn("Dropping unreadable cache entry", "error", err)
		return nil, nil
	}
	return items, nil
}

// SetList stores a listing for the filter with a short TTL
func (c *Cache) SetList(ctx context.Context, filter *model.ProcurementFilter, items []*model.ProcurementSummary) error {
	data, err := json.Marshal(items)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal listing for cache")
	}
	if err := c.client.Set(ctx, listKey(filter), data, listTTL).Err(); err != nil {
		return goerr.Wrap(err, "failed to store listing in cache")
	}
	return nil
}

// Invalidate removes all cached listings
func (c *Cache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, listKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return goerr.Wrap(err, "failed to scan cache keys")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return goerr.Wrap(err, "failed to delete cache keys")
	}
	return nil
}

// Close releases the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

func listKey(filter *model.ProcurementFilter) string {
	key := listKeyPrefix
	if filter == nil {
		return key + "all"
	}
	key += fmt.Sprintf("s=%s:c=%s:cat=%s:org=%s",
		strOrEmpty(filter.Status), strOrEmpty(filter.City),
		idOrEmpty(filter.CategoryID), idOrEmpty(filter.OrganizerID))
	return key
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func idOrEmpty[T ~int64](id *T) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%d", *id)
}
