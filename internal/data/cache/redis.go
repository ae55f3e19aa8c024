package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Redis backs the snapshot cache with a shared Redis instance so
// several dashboard processes can reuse one fetch.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// NewRedisFromAddr dials a Redis at addr/db.
func NewRedisFromAddr(addr string, db int) *Redis {
	return NewRedis(redis.NewClient(&redis.Options{Addr: addr, DB: db}))
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		// A flaky cache must never break a render; treat as a miss.
		log.Warn().Err(err).Str("key", key).Msg("redis cache read failed")
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache write failed")
		return err
	}
	return nil
}
