package beercatalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"beerorders/internal/core/domain/model/beer"
	"beerorders/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "beer:upc:"

// CachingCatalog decorates a BeerCatalog with a Redis read-through cache.
// Catalog data changes rarely, so entries live for a generous TTL. Cache
// failures fall through to the upstream catalog rather than failing the
// lookup.
type CachingCatalog struct {
	upstream ports.BeerCatalog
	client   *redis.Client
	ttl      time.Duration
	log      *slog.Logger
}

// NewCachingCatalog wraps upstream with a Redis cache using the given TTL.
func NewCachingCatalog(upstream ports.BeerCatalog, client *redis.Client, ttl time.Duration) *CachingCatalog {
	return &CachingCatalog{
		upstream: upstream,
		client:   client,
		ttl:      ttl,
		log:      slog.Default().With("component", "beer-catalog-cache"),
	}
}

// GetByUPC serves from cache when possible, otherwise asks the upstream
// catalog and stores the result. Only successful lookups are cached, so a
// UPC added to the catalog later is picked up immediately.
func (c *CachingCatalog) GetByUPC(ctx context.Context, upc string) (*beer.Beer, error) {
	key := cacheKeyPrefix + upc

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var entry beer.Beer
		if unmarshalErr := json.Unmarshal(cached, &entry); unmarshalErr == nil {
			return &entry, nil
		}
		// stale or corrupt entry, fall through and refresh
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn("cache read failed", "upc", upc, "error", err)
	}

	entry, err := c.upstream.GetByUPC(ctx, upc)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(entry)
	if err == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			c.log.Warn("cache write failed", "upc", upc, "error", setErr)
		}
	}

	return entry, nil
}
