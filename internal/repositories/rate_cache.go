package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/spotbnb/internal/logger"
)

// RateCacheRepository keeps recently fetched exchange rates in Redis.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{client: client, exp: expiration}
}

func rateKey(from, to string) string {
	return fmt.Sprintf("spotbnb:rate:%s:%s", from, to)
}

// Get returns the cached rate. found is false on a cache miss.
func (r *RateCacheRepository) Get(ctx context.Context, from, to string) (rate float32, found bool, err error) {
	key := rateKey(from, to)

	val, err := r.client.Get(ctx, key).Result()
	logger.FromContext(ctx).Infow("cache get", "key", key, "value", val, "error", err)

	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	parsed, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return 0, false, err
	}
	return float32(parsed), true, nil
}

func (r *RateCacheRepository) Set(ctx context.Context, from, to string, rate float32) error {
	key := rateKey(from, to)

	err := r.client.Set(ctx, key, strconv.FormatFloat(float64(rate), 'f', -1, 32), r.exp).Err()
	logger.FromContext(ctx).Infow("cache set", "key", key, "rate", rate, "error", err)

	return err
}
