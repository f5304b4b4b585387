package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/auth-system/internal/core/ports"
)

// AccessTokenCache is a write-through token persister: every token is saved
// to the wrapped repository first and then cached under
// access_token:<user_id> for the lifetime of the token. The cache is what
// lets a bearer token be checked against the most recent login without a
// database round trip.
type AccessTokenCache struct {
	client *redis.Client
	next   ports.UpdateAccessTokenRepository
	ttl    time.Duration
}

// NewAccessTokenCache wraps next. A nil next makes the cache the only store.
func NewAccessTokenCache(client *redis.Client, next ports.UpdateAccessTokenRepository, ttl time.Duration) *AccessTokenCache {
	return &AccessTokenCache{client: client, next: next, ttl: ttl}
}

// UpdateAccessToken persists accessToken through the wrapped repository and
// refreshes the cached copy. An empty token clears the cached entry.
//
// A cache failure after a successful write leaves the repository holding a
// token the caller never receives; the next login overwrites it.
func (c *AccessTokenCache) UpdateAccessToken(ctx context.Context, userID, accessToken string) error {
	if c.next != nil {
		if err := c.next.UpdateAccessToken(ctx, userID, accessToken); err != nil {
			return err
		}
	}

	if accessToken == "" {
		if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
			return fmt.Errorf("clear cached token: %w", err)
		}
		return nil
	}

	if err := c.client.Set(ctx, c.key(userID), accessToken, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache token: %w", err)
	}
	return nil
}

// IsCurrent reports whether accessToken is the latest token issued to userID.
func (c *AccessTokenCache) IsCurrent(ctx context.Context, userID, accessToken string) (bool, error) {
	cached, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cached token: %w", err)
	}
	return cached == accessToken, nil
}

func (c *AccessTokenCache) key(userID string) string {
	return "access_token:" + userID
}
