package cache

import (
	"context"
	"encoding/json"
	"time"

	"wa-bazaar-be/internal/entity"

	"github.com/redis/go-redis/v9"
)

// listingCacheTTL bounds staleness of per-category search pools. Publishes
// invalidate eagerly, so this mostly covers expiry-batch lag.
const listingCacheTTL = 5 * time.Minute

// ListingCache keeps the active listings of each category in Redis so the
// search path can score them without hitting Postgres per message.
type ListingCache struct {
	rdb *redis.Client
}

func NewListingCache(rdb *redis.Client) *ListingCache {
	return &ListingCache{rdb: rdb}
}

func key(category string) string {
	return "listings:active:" + category
}

// Get returns the cached pool for a category. A miss (or any Redis error)
// returns (nil, false); callers fall through to the repository.
func (c *ListingCache) Get(ctx context.Context, category string) ([]*entity.Listing, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key(category)).Bytes()
	if err != nil {
		return nil, false
	}
	var listings []*entity.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, false
	}
	return listings, true
}

// Set replaces the pool for a category. Errors are swallowed - the cache
// is an optimization, never a source of truth.
func (c *ListingCache) Set(ctx context.Context, category string, listings []*entity.Listing) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(listings)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(category), raw, listingCacheTTL)
}

// Invalidate drops a category pool, called after publish and expiry.
func (c *ListingCache) Invalidate(ctx context.Context, category string) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(category))
}
