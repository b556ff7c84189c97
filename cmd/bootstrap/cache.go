package bootstrap

import (
	"context"
	"log/slog"

	"laundromat-api/internal/infra/cache"
	"laundromat-api/internal/pkg/config"
	"laundromat-api/internal/usecase/queries"
	"laundromat-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
			fx.As(new(shared.AvailabilityInvalidator)),
		),
	),
)

// NewRedisClient does not fail when Redis is down; availability reads fall
// back to PostgreSQL.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, availability cache disabled until it recovers",
					"addr", cfg.Redis.Addr,
					"error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewAvailabilityCache(client *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(client, cfg.Redis.TTL)
}
