//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/careledger/clinic-api/internal/infrastructure/db/redis"
)

func newRedisClient(t *testing.T) *goredis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err, "start redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestRevocationList_RevokeAndCheck(t *testing.T) {
	client := newRedisClient(t)
	list := redis.NewRevocationList(client, redis.WithKeyPrefix("test:jti:"))
	ctx := context.Background()

	revoked, err := list.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "abc", time.Minute))

	revoked, err = list.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, "test:jti:abc").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRevocationList_Expires(t *testing.T) {
	client := newRedisClient(t)
	list := redis.NewRevocationList(client)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "short", 50*time.Millisecond))

	assert.Eventually(t, func() bool {
		revoked, err := list.IsRevoked(ctx, "short")
		return err == nil && !revoked
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRevocationList_EmptyOrExpiredIsNoop(t *testing.T) {
	client := newRedisClient(t)
	list := redis.NewRevocationList(client)
	ctx := context.Background()

	require.NoError(t, list.Revoke(ctx, "", time.Minute))
	require.NoError(t, list.Revoke(ctx, "gone", -time.Second))

	n, err := client.DBSize(ctx).Result()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConnect(t *testing.T) {
	client := newRedisClient(t)

	connected, err := redis.Connect(context.Background(), redis.Config{Addr: client.Options().Addr})
	require.NoError(t, err)
	_ = connected.Close()

	_, err = redis.Connect(context.Background(), redis.Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
