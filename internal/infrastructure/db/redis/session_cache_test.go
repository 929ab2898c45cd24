package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repairdesk/support-api/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*SessionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionCache(client, ttl), mr
}

func TestSessionCache_SetGet(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, domain.Session{UserID: "u1", Role: domain.RoleAdmin}))
	assert.True(t, mr.Exists("session:u1"))

	sess, ok, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Session{UserID: "u1", Role: domain.RoleAdmin}, sess)
}

func TestSessionCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.Session{UserID: "u1", Role: domain.RoleUser}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionCache_Delete(t *testing.T) {
	cache, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.Session{UserID: "u1", Role: domain.RoleUser}))
	assert.Equal(t, defaultSessionTTL, mr.TTL("session:u1"))

	require.NoError(t, cache.Delete(ctx, "u1"))
	assert.False(t, mr.Exists("session:u1"))
}

func TestSessionCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, ok, err := cache.Get(context.Background(), "u1")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
