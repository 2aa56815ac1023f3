// Package cache holds the Redis-backed short-lived stores.
package cache

import (
	"context"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/lifecycle"
	"inkwell/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient builds the client and pings it on start; an unreachable
// Redis stops the process from starting.
func NewRedisClient(params Params) redis.UniversalClient {
	cfg := params.Config.Redis

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}
