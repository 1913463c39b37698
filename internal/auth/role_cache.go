package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

const roleCacheKeyPrefix = "user:role:"

// RoleCache caches stored roles in Redis so the admin gate does not hit the
// users table on every request. All methods tolerate a nil or unreachable
// client; a cache failure is never an authorization failure.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache builds the cache. A nil client disables caching.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role for the email, if present.
func (c *RoleCache) Get(ctx context.Context, email string) (domain.UserRole, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	val, err := c.client.Get(ctx, roleCacheKeyPrefix+email).Result()
	if err != nil {
		return "", false
	}
	return domain.UserRole(val), true
}

// Set stores the role for the email.
func (c *RoleCache) Set(ctx context.Context, email string, role domain.UserRole) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, roleCacheKeyPrefix+email, string(role), c.ttl).Err()
}

// Invalidate drops the cached role, e.g. after a role update.
func (c *RoleCache) Invalidate(ctx context.Context, email string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, roleCacheKeyPrefix+email).Err()
}
