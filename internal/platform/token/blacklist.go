// Package token provides the Redis-backed revoked-token store.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist stores revoked tokens in Redis until they would have expired
// anyway. A token lives at most ttl after issuance, so keeping the
// blacklist entry for the full ttl always outlasts the token itself.
type Blacklist struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewBlacklist creates a new Blacklist instance.
func NewBlacklist(client *redis.Client, prefix string, ttl time.Duration) *Blacklist {
	return &Blacklist{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// tokenKey returns the Redis key for a revoked token.
func (b *Blacklist) tokenKey(token string) string {
	return fmt.Sprintf("%s:%s", b.prefix, token)
}

// Revoke marks the token as unusable for the rest of its lifetime.
func (b *Blacklist) Revoke(ctx context.Context, token string) error {
	return b.client.Set(ctx, b.tokenKey(token), "1", b.ttl).Err()
}

// IsRevoked reports whether the token has been revoked.
func (b *Blacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := b.client.Get(ctx, b.tokenKey(token)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
