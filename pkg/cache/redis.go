// Package cache provides the shared Redis client.
package cache

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/uniguide/uniguide/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("cache",
	fx.Provide(NewClient),
)

// NewClient connects to Redis; a failed ping is logged but not fatal so
// the API can still serve without OTP issuance and rate limiting.
func NewClient(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if lc != nil {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					log.Warn("redis unreachable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				_ = ctx
				return client.Close()
			},
		})
	}

	return client
}
