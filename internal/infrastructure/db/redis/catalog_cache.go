package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopcore/commerce-api/internal/core/ports"
)

const (
	cacheTTL   = 5 * time.Minute
	versionKey = "products:ver"
)

// CatalogCache stores serialized product pages under versioned keys.
// Invalidation bumps a single version counter, orphaning every key of the
// previous generation; the stale entries expire on their own TTL.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

func (c *CatalogCache) Get(ctx context.Context, key string) (*ports.ProductPage, error) {
	full, err := c.versionedKey(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, err := c.client.Get(ctx, full).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var page ports.ProductPage
	if err := json.Unmarshal(raw, &page); err != nil {
		// A corrupt entry is treated as a miss so the caller falls back
		// to the repository.
		return nil, nil
	}
	return &page, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, page *ports.ProductPage) error {
	full, err := c.versionedKey(ctx, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, full, raw, cacheTTL).Err()
}

// Invalidate bumps the version counter, which makes every cached listing of
// the current generation unreachable.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *CatalogCache) versionedKey(ctx context.Context, key string) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("cache version: %w", err)
	}
	return fmt.Sprintf("products:v%d:%s", ver, key), nil
}
