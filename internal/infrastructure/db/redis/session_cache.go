package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/infrastructure/metrics"
)

const defaultSessionTTL = 15 * time.Minute

// SessionCache stores the role of authenticated users.
// Key format: session:<user_id>
type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a SessionCache whose entries expire after ttl.
func NewSessionCache(client *redis.Client, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionCache{client: client, ttl: ttl}
}

// Get reports the cached session for userID, if any.
func (c *SessionCache) Get(ctx context.Context, userID string) (domain.Session, bool, error) {
	role, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
		return domain.Session{}, false, nil
	}
	if err != nil {
		metrics.SessionCacheTotal.WithLabelValues("error").Inc()
		return domain.Session{}, false, fmt.Errorf("session get: %w", err)
	}

	metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
	return domain.Session{UserID: userID, Role: role}, true, nil
}

// Set caches s until the TTL elapses.
func (c *SessionCache) Set(ctx context.Context, s domain.Session) error {
	if err := c.client.Set(ctx, c.key(s.UserID), s.Role, c.ttl).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (c *SessionCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (c *SessionCache) key(userID string) string {
	return "session:" + userID
}
