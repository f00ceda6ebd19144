package lock

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resale/config"
	"resale/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestLocker(t *testing.T, ttl time.Duration) (service.Locker, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, ttl), server
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	locker, server := newTestLocker(t, time.Minute)
	ctx := context.Background()

	release, err := locker.TryLock(ctx, "lock:payment:booking:b1")
	require.NoError(t, err)
	assert.True(t, server.Exists("lock:payment:booking:b1"))

	_, err = locker.TryLock(ctx, "lock:payment:booking:b1")
	assert.ErrorIs(t, err, service.ErrLockHeld)

	// Different keys do not contend.
	releaseOther, err := locker.TryLock(ctx, "lock:payment:booking:b2")
	require.NoError(t, err)
	require.NoError(t, releaseOther(ctx))

	require.NoError(t, release(ctx))
	assert.False(t, server.Exists("lock:payment:booking:b1"))

	release, err = locker.TryLock(ctx, "lock:payment:booking:b1")
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}

func TestRedisLocker_ConcurrentAcquire(t *testing.T) {
	locker, _ := newTestLocker(t, time.Minute)
	ctx := context.Background()

	var winners atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := locker.TryLock(ctx, "lock:payment:booking:b1"); err == nil {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestRedisLocker_ExpiredHolderCannotReleaseSuccessor(t *testing.T) {
	locker, server := newTestLocker(t, time.Second)
	ctx := context.Background()

	staleRelease, err := locker.TryLock(ctx, "lock:payment:booking:b1")
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	_, err = locker.TryLock(ctx, "lock:payment:booking:b1")
	require.NoError(t, err)

	require.NoError(t, staleRelease(ctx))
	assert.True(t, server.Exists("lock:payment:booking:b1"))
}

func TestRedisLocker_RedisUnavailable(t *testing.T) {
	locker, server := newTestLocker(t, time.Minute)
	server.Close()

	_, err := locker.TryLock(context.Background(), "lock:payment:booking:b1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrLockHeld)
}

func TestNewLocker(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("noop without redis", func(t *testing.T) {
		locker := NewLocker(Params{Lc: fxtest.NewLifecycle(t), Config: &config.Config{}, Logger: logger})
		release, err := locker.TryLock(context.Background(), "k")
		require.NoError(t, err)
		release2, err := locker.TryLock(context.Background(), "k")
		require.NoError(t, err)
		require.NoError(t, release(context.Background()))
		require.NoError(t, release2(context.Background()))
	})

	t.Run("redis when configured", func(t *testing.T) {
		server := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		locker := NewLocker(Params{
			Lc:     lc,
			Config: &config.Config{Redis: &config.RedisConfig{Addr: server.Addr(), LockTTL: time.Minute}},
			Logger: logger,
		})
		lc.RequireStart()
		defer lc.RequireStop()

		_, err := locker.TryLock(context.Background(), "k")
		require.NoError(t, err)
		_, err = locker.TryLock(context.Background(), "k")
		assert.ErrorIs(t, err, service.ErrLockHeld)
	})
}
