package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/spotbnb/internal/logger"
)

// SessionRepository remembers revoked tokens until they would have expired anyway.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func revokedKey(tokenID string) string {
	return "spotbnb:revoked:" + tokenID
}

// Revoke marks the token as logged out for ttl. A non-positive ttl is a no-op.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := revokedKey(tokenID)

	err := r.client.Set(ctx, key, "1", ttl).Err()
	logger.FromContext(ctx).Infow("session revoke", "key", key, "ttl", ttl, "error", err)

	return err
}

func (r *SessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedKey(tokenID)

	err := r.client.Get(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("session lookup failed", "key", key, "error", err)
		return false, err
	}
	return true, nil
}
