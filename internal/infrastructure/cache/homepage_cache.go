package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	appcatalog "github.com/storefront/backend/internal/application/catalog"
)

const homepageKey = "storefront:homepage:v1"

// RedisHomepageCache caches the assembled homepage response in redis.
// Implements the item service's HomepageCache interface.
type RedisHomepageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisHomepageCache creates a homepage cache with the given TTL
func NewRedisHomepageCache(client *redis.Client, ttl time.Duration) *RedisHomepageCache {
	return &RedisHomepageCache{client: client, ttl: ttl}
}

// GetHomepage returns the cached homepage, or ok=false on a miss
func (c *RedisHomepageCache) GetHomepage(ctx context.Context) (*appcatalog.HomepageResponse, bool, error) {
	data, err := c.client.Get(ctx, homepageKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var homepage appcatalog.HomepageResponse
	if err := json.Unmarshal(data, &homepage); err != nil {
		// a corrupt entry counts as a miss
		return nil, false, nil
	}

	return &homepage, true, nil
}

// SetHomepage stores the homepage with the configured TTL
func (c *RedisHomepageCache) SetHomepage(ctx context.Context, homepage *appcatalog.HomepageResponse) error {
	data, err := json.Marshal(homepage)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, homepageKey, data, c.ttl).Err()
}

// InvalidateHomepage drops the cached homepage
func (c *RedisHomepageCache) InvalidateHomepage(ctx context.Context) error {
	return c.client.Del(ctx, homepageKey).Err()
}
