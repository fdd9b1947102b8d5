package bootstrap

import (
	"context"

	"loyaltybot/internal/infra/session"
	"loyaltybot/internal/pkg/clock"
	"loyaltybot/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
	),
)

// NewSessionStore picks the conversation-state backend. Memory is the
// single-instance default; redis survives restarts and multiple replicas.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (session.Store, error) {
	if cfg.Session.Backend != "redis" {
		return session.NewMemoryStore(cfg.Session.TTL, clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return session.NewRedisStore(client, cfg.Session.TTL, clk), nil
}
