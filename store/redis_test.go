package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisWithClient(client)
}

func TestRedisAbsentKey(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t)

	got, err := r.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSetGetDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t)

	require.NoError(t, r.Set(ctx, TableKey(TableMatters), []byte(`[{"id":"mt_1"}]`)))

	got, err := r.Get(ctx, TableKey(TableMatters))
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"mt_1"}]`), got)

	require.NoError(t, r.Delete(ctx, TableKey(TableMatters)))
	got, err = r.Get(ctx, TableKey(TableMatters))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisOverwrite(t *testing.T) {
	ctx := context.Background()
	r := newTestRedis(t)

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	got, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestNewRedisBadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not-a-url")
	assert.Error(t, err)
}
