// Package cache fronts catalog lookups with redis. The API runs fine
// without it; an empty address disables caching entirely.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MikeMC777/bazaar-api/internal/order"
)

const productTTL = 5 * time.Minute

type Client struct {
	rdb *redis.Client
}

// New connects to redis, or returns nil when addr is empty so callers can
// skip caching.
func New(ctx context.Context, addr, password string) *Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] redis unavailable, continuing without cache: %v", err)
		return nil
	}
	log.Printf("[cache] redis connected")
	return &Client{rdb: rdb}
}

func productKey(id string) string { return "product:" + id }

// Catalog is a read-through wrapper over another catalog. Cache misses and
// redis errors fall back to the inner lookup.
type Catalog struct {
	Next  order.Catalog
	Cache *Client
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (*order.CatalogProduct, error) {
	if c.Cache != nil {
		if raw, err := c.Cache.rdb.Get(ctx, productKey(id)).Bytes(); err == nil {
			var p order.CatalogProduct
			if json.Unmarshal(raw, &p) == nil {
				return &p, nil
			}
		}
	}
	p, err := c.Next.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		if raw, err := json.Marshal(p); err == nil {
			_ = c.Cache.rdb.Set(ctx, productKey(id), raw, productTTL).Err()
		}
	}
	return p, nil
}

// InvalidateProduct drops a cached product after a catalog mutation.
func (c *Client) InvalidateProduct(ctx context.Context, id string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, productKey(id)).Err(); err != nil {
		log.Printf("[cache] invalidate product %s: %v", id, err)
	}
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
