package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-prep/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectGet("key1").SetVal("value1")
	val, err := cache.Get(ctx, "key1")
	assert.NoError(t, err)
	assert.Equal(t, "value1", val)

	mock.ExpectGet("missing").RedisNil()
	_, err = cache.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	mock.ExpectGet("broken").SetErr(errors.New("connection refused"))
	_, err = cache.Get(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_SetAndDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)
	ctx := context.Background()

	mock.ExpectSet("key1", "value1", time.Hour).SetVal("OK")
	assert.NoError(t, cache.Set(ctx, "key1", "value1", time.Hour))

	mock.ExpectDel("key1").SetVal(1)
	assert.NoError(t, cache.Delete(ctx, "key1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, cache.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
