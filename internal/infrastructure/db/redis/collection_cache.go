package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

const (
	keyUsers        = "cache:users"
	keyApplications = "cache:applications"
)

// CollectionCache holds possibly-stale copies of the two store collections
// under fixed keys. A Get miss returns nil so the caller refetches from the
// store; Invalidate deletes the key, which is what makes a mutation visible
// to the next list read. The TTL bounds staleness when an invalidation is
// lost.
type CollectionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCollectionCache creates a CollectionCache wrapping the given Redis client.
func NewCollectionCache(client *redis.Client, ttl time.Duration) *CollectionCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CollectionCache{client: client, ttl: ttl}
}

// GetUsers returns the cached user collection, or nil on a miss. A cached
// empty collection comes back as a non-nil empty slice so callers using the
// nil check still count it as a hit.
func (c *CollectionCache) GetUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	ok, err := c.get(ctx, keyUsers, &users)
	if err != nil || !ok {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// SetUsers stores the user collection under the user-collection key.
func (c *CollectionCache) SetUsers(ctx context.Context, users []domain.User) error {
	return c.set(ctx, keyUsers, users)
}

// InvalidateUsers marks the cached user collection stale.
func (c *CollectionCache) InvalidateUsers(ctx context.Context) error {
	return c.invalidate(ctx, keyUsers)
}

// GetApplications returns the cached application collection, or nil on a
// miss. An empty collection is a hit, same as GetUsers.
func (c *CollectionCache) GetApplications(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	ok, err := c.get(ctx, keyApplications, &apps)
	if err != nil || !ok {
		return nil, err
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// SetApplications stores the application collection under the
// application-collection key.
func (c *CollectionCache) SetApplications(ctx context.Context, apps []domain.Application) error {
	return c.set(ctx, keyApplications, apps)
}

// InvalidateApplications marks the cached application collection stale.
func (c *CollectionCache) InvalidateApplications(ctx context.Context) error {
	return c.invalidate(ctx, keyApplications)
}

func (c *CollectionCache) get(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *CollectionCache) set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}

func (c *CollectionCache) invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache invalidate %s: %w", key, err)
	}
	return nil
}
