package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements the sliding window on a Redis sorted set per
// key, scored by event time in nanoseconds.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// NewRedisClient dials Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int, error) {
	now := time.Now()
	member := fmt.Sprintf("%d", now.UnixNano())

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, s.key(key), "0", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	pipe.ZAdd(ctx, s.key(key), redis.Z{Score: float64(now.UnixNano()), Member: member})
	card := pipe.ZCard(ctx, s.key(key))
	pipe.Expire(ctx, s.key(key), window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to record rate limit event: %w", err)
	}
	return int(card.Val()), nil
}

func (s *RedisStore) Count(ctx context.Context, key string, window time.Duration) (int, error) {
	now := time.Now()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, s.key(key), "0", fmt.Sprintf("%d", now.Add(-window).UnixNano()))
	card := pipe.ZCard(ctx, s.key(key))

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count rate limit events: %w", err)
	}
	return int(card.Val()), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit key: %w", err)
	}
	return nil
}

func (s *RedisStore) key(key string) string {
	return "ratelimit:" + key
}
