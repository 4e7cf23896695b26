package job

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const listingKey = "jobs:listing"

// ListingCache keeps the public job listing in Redis for a short TTL.
// Concurrent misses collapse into a single load via singleflight. A nil
// cache (or nil client) degrades to calling the loader directly.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

// NewListingCache instantiates the cache helper.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, ttl: ttl}
}

// Fetch returns the cached listing, populating it with loader on a miss.
func (c *ListingCache) Fetch(ctx context.Context, loader func(context.Context) ([]Job, error)) ([]Job, error) {
	if loader == nil {
		return nil, errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err == nil {
		var jobs []Job
		if err := json.Unmarshal(raw, &jobs); err == nil {
			return jobs, nil
		}
		// Corrupt entry: fall through and rebuild.
	} else if !errors.Is(err, redis.Nil) {
		return loader(ctx)
	}

	resultChan := c.group.DoChan(listingKey, func() (any, error) {
		jobs, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		if data, err := json.Marshal(jobs); err == nil {
			_ = c.client.Set(ctx, listingKey, data, c.ttl).Err()
		}
		return jobs, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Job), nil
	}
}

// Invalidate drops the cached listing, called after a posting changes.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, listingKey).Err()
}
