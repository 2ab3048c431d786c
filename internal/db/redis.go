package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ostech-br/os-manager/internal/config"
	"github.com/ostech-br/os-manager/internal/logger"
)

// NewRedis connects the client used by the rate limiter. The limiter
// fails open, so an unreachable Redis only logs a warning here.
func NewRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).
			Msg("redis unreachable, rate limiting will fail open")
	}

	return client
}
