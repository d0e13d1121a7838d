package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles auth attempts per client key using a fixed
// window counter in Redis. Key format: ratelimit:auth:<client_key>
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a LoginLimiter allowing limit attempts per
// window for each distinct key.
func NewLoginLimiter(client *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt for key and reports whether it is within the
// limit. The counter's TTL is set on the first attempt of each window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rkey := l.key(key)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, rkey)
	pipe.ExpireNX(ctx, rkey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= l.limit, nil
}

func (l *LoginLimiter) key(clientKey string) string {
	return fmt.Sprintf("ratelimit:auth:%s", clientKey)
}
