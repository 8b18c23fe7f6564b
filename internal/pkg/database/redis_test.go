package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/piresc/barengan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	return &RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestRedisClient_SetNX(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "lock:trip-1", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "lock:trip-1", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := client.Get(ctx, "lock:trip-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-a", val)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists("lock:trip-1"))
}

func TestRedisClient_IncrSetsExpiry(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	n, err := client.Incr(ctx, "attempts:trip-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = client.Incr(ctx, "attempts:trip-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, time.Hour, mr.TTL("attempts:trip-1"))
}

func TestRedisClient_DeleteAndPing(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("k", "v"))
	require.NoError(t, client.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
	assert.NoError(t, client.Ping(ctx))
}

func TestRedisClient_SetNXError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectSetNX("lock:trip-2", "owner", time.Minute).SetErr(errors.New("connection reset"))

	ok, err := client.SetNX(context.Background(), "lock:trip-2", "owner", time.Minute)

	assert.Error(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
