package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenRepo struct {
	err     error
	updates []string
}

func (r *stubTokenRepo) UpdateAccessToken(_ context.Context, userID, accessToken string) error {
	if r.err != nil {
		return r.err
	}
	r.updates = append(r.updates, userID+":"+accessToken)
	return nil
}

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestAccessTokenCache_WritesThrough(t *testing.T) {
	mr, client := newTestClient(t)
	repo := &stubTokenRepo{}
	cache := NewAccessTokenCache(client, repo, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.UpdateAccessToken(ctx, "u1", "tok-1"))

	assert.Equal(t, []string{"u1:tok-1"}, repo.updates)
	got, err := mr.Get("access_token:u1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got)
	assert.Equal(t, time.Hour, mr.TTL("access_token:u1"))
}

func TestAccessTokenCache_IsCurrent(t *testing.T) {
	_, client := newTestClient(t)
	cache := NewAccessTokenCache(client, nil, time.Hour)
	ctx := context.Background()

	ok, err := cache.IsCurrent(ctx, "u1", "tok-1")
	require.NoError(t, err)
	assert.False(t, ok, "nothing cached yet")

	require.NoError(t, cache.UpdateAccessToken(ctx, "u1", "tok-1"))
	ok, err = cache.IsCurrent(ctx, "u1", "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, cache.UpdateAccessToken(ctx, "u1", "tok-2"))
	ok, err = cache.IsCurrent(ctx, "u1", "tok-1")
	require.NoError(t, err)
	assert.False(t, ok, "superseded token")
}

func TestAccessTokenCache_EmptyTokenClearsEntry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewAccessTokenCache(client, nil, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.UpdateAccessToken(ctx, "u1", "tok-1"))
	require.NoError(t, cache.UpdateAccessToken(ctx, "u1", ""))

	assert.False(t, mr.Exists("access_token:u1"))
}

func TestAccessTokenCache_RepositoryFailureSkipsCache(t *testing.T) {
	mr, client := newTestClient(t)
	errStore := errors.New("store down")
	cache := NewAccessTokenCache(client, &stubTokenRepo{err: errStore}, time.Hour)

	err := cache.UpdateAccessToken(context.Background(), "u1", "tok-1")

	assert.ErrorIs(t, err, errStore)
	assert.False(t, mr.Exists("access_token:u1"))
}

func TestAccessTokenCache_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewAccessTokenCache(client, nil, time.Hour)
	mr.Close()

	_, err := cache.IsCurrent(context.Background(), "u1", "tok-1")
	assert.Error(t, err)
}

func TestAccessTokenCache_UpdateWithRedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	repo := &stubTokenRepo{}
	cache := NewAccessTokenCache(client, repo, time.Hour)
	mr.Close()

	err := cache.UpdateAccessToken(context.Background(), "u1", "tok-1")

	assert.Error(t, err)
	assert.Equal(t, []string{"u1:tok-1"}, repo.updates, "repository is written before the cache")
}
