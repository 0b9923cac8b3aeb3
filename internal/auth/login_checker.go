package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Resolve returns the identity behind a live session token.
// Expired sessions yield ErrUnauthenticated.
func (lc *LoginChecker) Resolve(ctx context.Context, token string) (Identity, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return Identity{}, err
	}

	identity, createdAt, err := parseSessionValue(cmd.Val())
	if err != nil {
		return Identity{}, err
	}

	if time.Since(createdAt) > lc.ttl {
		return Identity{}, ErrUnauthenticated
	}

	return identity, nil
}
