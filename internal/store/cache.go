package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/metehanbayar/orman/config"
	"github.com/metehanbayar/orman/internal/models"
)

const (
	productsCacheKey   = "orman:products"
	productsVersionKey = "orman:products:version"
	productsCacheTTL   = 5 * time.Minute
)

// Cache fronts the product catalog with Redis. Every method is safe to
// call on a nil receiver, so a missing Redis configuration degrades to
// plain file reads.
type Cache struct {
	client *redis.Client
}

// cacheEntry stamps the cached product list with the catalog version it
// was built from. A write bumps the version key, so stale entries fail
// the version check instead of lingering until TTL expiry.
type cacheEntry struct {
	Version  int64            `json:"version"`
	Products []models.Product `json:"products"`
}

// NewCache connects to Redis using either a URL or address-style config.
func NewCache(cfg config.RedisConfig) (*Cache, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("[Cache] Connected to Redis at %s", opts.Addr)
	return &Cache{client: client}, nil
}

// GetProducts returns the cached product list if it is present and still
// matches the current catalog version.
func (c *Cache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, productsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Printf("[Cache] Dropping unreadable products entry: %v", err)
		c.client.Del(ctx, productsCacheKey)
		return nil, false
	}

	version, err := c.client.Get(ctx, productsVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return nil, false
	}
	if entry.Version != version {
		return nil, false
	}
	return entry.Products, true
}

// SetProducts caches the product list under the current catalog version.
func (c *Cache) SetProducts(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}

	version, err := c.client.Get(ctx, productsVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return
	}

	data, err := json.Marshal(cacheEntry{Version: version, Products: products})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productsCacheKey, data, productsCacheTTL).Err(); err != nil {
		log.Printf("[Cache] Failed to cache products: %v", err)
	}
}

// Invalidate bumps the catalog version and drops the cached list.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, productsVersionKey).Err(); err != nil {
		log.Printf("[Cache] Failed to bump catalog version: %v", err)
	}
	c.client.Del(ctx, productsCacheKey)
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
