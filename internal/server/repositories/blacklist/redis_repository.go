package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/ZeroColaa/authkeep/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "blacklist:"

// RedisRepository stores blacklist entries as Redis keys with a TTL equal to
// the token's remaining lifetime, so expired entries vanish without a purge
// pass.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) Add(ctx context.Context, entry *models.BlacklistedToken) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		// Already past its own expiry; nothing to deny.
		return nil
	}

	value := fmt.Sprintf("%d:%s", entry.UserID, entry.Reason)
	if err := r.client.Set(ctx, keyPrefix+entry.Token, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	return nil
}

func (r *RedisRepository) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return n > 0, nil
}

// DeleteExpiredBefore is a no-op: Redis evicts entries via per-key TTLs.
func (r *RedisRepository) DeleteExpiredBefore(ctx context.Context, t time.Time) (int64, error) {
	return 0, nil
}
