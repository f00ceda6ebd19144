// Package lock provides distributed mutual exclusion for the payment flow.
package lock

import (
	"context"
	"log/slog"
	"time"

	"resale/config"
	"resale/internal/domain/lifecycle"
	"resale/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// releaseScript deletes the key only while it still holds our token,
// so a holder whose TTL lapsed cannot release a successor's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const defaultLockTTL = 30 * time.Second

type redisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker creates a Locker that holds keys for at most ttl
func NewRedisLocker(client *redis.Client, ttl time.Duration) service.Locker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &redisLocker{client: client, ttl: ttl}
}

// TryLock acquires key with SET NX PX. It never waits for a current holder.
func (l *redisLocker) TryLock(ctx context.Context, key string) (func(context.Context) error, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
	}
	if !acquired {
		return nil, service.ErrLockHeld
	}

	release := func(releaseCtx context.Context) error {
		if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			return errors.Wrapf(err, "failed to release lock %s", key)
		}

		return nil
	}

	return release, nil
}

// noopLocker always succeeds. Row locks in the database remain the only guard.
type noopLocker struct{}

func (noopLocker) TryLock(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

// NewNoopLocker creates a Locker that never blocks
func NewNoopLocker() service.Locker {
	return noopLocker{}
}

// Params holds dependencies for the Locker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewLocker creates a Redis-backed Locker when Redis is configured, otherwise a no-op one
func NewLocker(params Params) service.Locker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, payment lock relies on database row locks only")

		return NewNoopLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis lock initialized", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisLocker(client, cfg.LockTTL)
}
